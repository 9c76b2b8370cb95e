package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// noteTimeFormat matches the timestamp format the host platform shows in
// the order activity trail.
const noteTimeFormat = "2006-01-02 15:04:05"

// ExemptionAuditRecord documents one VAT-exemption validation decision.
// The canonical copy lives in the order's note trail; this struct is the
// composed form before rendering.
type ExemptionAuditRecord struct {
	OrderID        uuid.UUID
	AuditUUID      string
	CompanyName    string
	VatNumber      string
	Result         LookupResult
	BillingAddress string
	CustomerIP     string
	OrderCreatedAt time.Time
}

// Render produces the human-readable audit note block. The layout is
// kept compatible with the notes the original checkout plugin wrote:
// a heading followed by one labelled line per field, with the lookup
// fault detail added only on error.
func (r ExemptionAuditRecord) Render() string {
	var b strings.Builder
	b.WriteString("<h3>VAT Exemption Details</h3>\n")
	fmt.Fprintf(&b, "Order ID: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Order UUID: %s\n", r.AuditUUID)
	fmt.Fprintf(&b, "Company Name: %s\n", r.CompanyName)
	fmt.Fprintf(&b, "VAT Number: %s\n", r.VatNumber)
	fmt.Fprintf(&b, "VIES Validation Result: %s\n", r.Result.Status)
	if r.Result.Status == LookupStatusError && r.Result.Detail != "" {
		fmt.Fprintf(&b, "VIES Validation Details: %s\n", r.Result.Detail)
	}
	fmt.Fprintf(&b, "Billing Address: %s\n", r.BillingAddress)
	fmt.Fprintf(&b, "Customer IP: %s\n", r.CustomerIP)
	fmt.Fprintf(&b, "Order Date: %s", r.OrderCreatedAt.Format(noteTimeFormat))
	return b.String()
}
