package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExemptionAuditRecord_Render(t *testing.T) {
	orderID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	record := ExemptionAuditRecord{
		OrderID:        orderID,
		AuditUUID:      "test-uuid-1234",
		CompanyName:    "Test Company",
		VatNumber:      "CZ25596641",
		Result:         Valid(),
		BillingAddress: "123 Main St, Suite 100, Anytown, 12345, Czech Republic",
		CustomerIP:     "127.0.0.1",
		OrderCreatedAt: time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC),
	}

	note := record.Render()

	assert.Contains(t, note, "<h3>VAT Exemption Details</h3>")
	assert.Contains(t, note, "Order ID: "+orderID.String())
	assert.Contains(t, note, "Order UUID: test-uuid-1234")
	assert.Contains(t, note, "Company Name: Test Company")
	assert.Contains(t, note, "VAT Number: CZ25596641")
	assert.Contains(t, note, "VIES Validation Result: Valid")
	assert.NotContains(t, note, "VIES Validation Details")
	assert.Contains(t, note, "123 Main St, Suite 100, Anytown, 12345, Czech Republic")
	assert.Contains(t, note, "Customer IP: 127.0.0.1")
	assert.Contains(t, note, "Order Date: 2023-10-26 10:00:00")
}

func TestExemptionAuditRecord_RenderError(t *testing.T) {
	record := ExemptionAuditRecord{
		OrderID:   uuid.New(),
		AuditUUID: "test-uuid-1234",
		Result:    LookupError("VIES service unavailable"),
	}

	note := record.Render()

	assert.Contains(t, note, "VIES Validation Result: Error")
	assert.Contains(t, note, "VIES Validation Details: VIES service unavailable")
}

func TestLookupResultConstructors(t *testing.T) {
	assert.Equal(t, LookupResult{Status: LookupStatusValid}, Valid())
	assert.Equal(t, LookupResult{Status: LookupStatusInvalid}, Invalid())
	assert.Equal(t, LookupResult{Status: LookupStatusError, Detail: "boom"}, LookupError("boom"))
	assert.Equal(t, "Valid", LookupStatusValid.String())
}
