package billing

import "context"

// LookupStatus is the tri-state outcome of a VAT-registry lookup.
type LookupStatus string

const (
	LookupStatusValid   LookupStatus = "Valid"
	LookupStatusInvalid LookupStatus = "Invalid"
	LookupStatusError   LookupStatus = "Error"
)

// String returns the status text as it appears in audit notes.
func (s LookupStatus) String() string {
	return string(s)
}

// LookupResult carries the registry's answer for one VAT number. Detail
// is only set for LookupStatusError and holds the fault description.
type LookupResult struct {
	Status LookupStatus
	Detail string
}

// Valid returns a LookupResult for a confirmed VAT registration.
func Valid() LookupResult { return LookupResult{Status: LookupStatusValid} }

// Invalid returns a LookupResult for a rejected VAT number.
func Invalid() LookupResult { return LookupResult{Status: LookupStatusInvalid} }

// LookupError returns a LookupResult for a failed lookup. The detail is
// recorded in the audit note so staff can re-verify manually.
func LookupError(detail string) LookupResult {
	return LookupResult{Status: LookupStatusError, Detail: detail}
}

// VatRegistry answers whether a VAT number is currently registered.
// Implementations absorb every transport or protocol failure into a
// LookupStatusError result; CheckVatNumber never returns a Go error and
// never panics on malformed input.
type VatRegistry interface {
	CheckVatNumber(ctx context.Context, vatNumber string) LookupResult
}
