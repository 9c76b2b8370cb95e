package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a read-mostly snapshot of a checkout order as the host
// commerce platform exposes it: billing identity, the VAT-exemption flag
// and a free-form metadata map. The snapshot stages metadata changes and
// notes locally; OrderRepository flushes them.
type Order struct {
	ID               uuid.UUID
	Number           string
	BillingFirstName string
	BillingLastName  string
	BillingCompany   string
	BillingAddress1  string
	BillingAddress2  string
	BillingCity      string
	BillingPostcode  string
	BillingCountry   string // ISO 3166-1 alpha-2
	CustomerIP       string
	VatExempt        bool
	Total            decimal.Decimal
	CreatedAt        time.Time

	meta      map[string]string
	dirtyMeta map[string]string
}

// Note is a single entry in the order's activity trail.
type Note struct {
	Text    string
	Private bool
}

// RestoreOrder rebuilds an order snapshot from persisted state.
func RestoreOrder(id uuid.UUID, number string, meta map[string]string) *Order {
	m := make(map[string]string, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	return &Order{
		ID:     id,
		Number: number,
		meta:   m,
	}
}

// Meta returns the metadata value for key, or "" when absent.
func (o *Order) Meta(key string) string {
	return o.meta[key]
}

// SetMeta stages a metadata change. The change is visible to subsequent
// Meta calls immediately but is only persisted by SaveMetadata.
func (o *Order) SetMeta(key, value string) {
	if o.meta == nil {
		o.meta = make(map[string]string)
	}
	if o.dirtyMeta == nil {
		o.dirtyMeta = make(map[string]string)
	}
	o.meta[key] = value
	o.dirtyMeta[key] = value
}

// DirtyMeta returns the staged, not yet persisted metadata changes.
func (o *Order) DirtyMeta() map[string]string {
	return o.dirtyMeta
}

// ClearDirtyMeta discards staged-change tracking after a successful flush.
func (o *Order) ClearDirtyMeta() {
	o.dirtyMeta = nil
}

// IsCompany reports whether the order carries a company billing name.
func (o *Order) IsCompany() bool {
	return strings.TrimSpace(o.BillingCompany) != ""
}

// VatNumber returns the raw VAT value for this order's billing country,
// selected by the per-country metadata key table. No validation is
// applied; the raw value is what gets sent to the registry.
func (o *Order) VatNumber() string {
	return o.Meta(VatFieldKey(o.BillingCountry))
}

// FormattedBillingAddress joins the non-empty address segments with a
// comma: street line 1, street line 2, city, postcode, country name.
func (o *Order) FormattedBillingAddress() string {
	segments := []string{
		o.BillingAddress1,
		o.BillingAddress2,
		o.BillingCity,
		o.BillingPostcode,
		CountryName(o.BillingCountry),
	}
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
