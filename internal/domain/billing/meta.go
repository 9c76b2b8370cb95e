package billing

// Order metadata keys. The key names are kept byte-for-byte compatible
// with the WooCommerce checkout fields the host platform writes, so the
// audit service can run against existing order data unchanged.
const (
	// MetaBusinessID holds the Business ID (IČO).
	MetaBusinessID = "_billing_ic"
	// MetaTaxID holds the plain Tax ID / VAT number (DIČ).
	MetaTaxID = "_billing_dic"
	// MetaSlovakVatNumber holds the prefixed Slovak VAT number (IČ DPH).
	MetaSlovakVatNumber = "_billing_dic_dph"
	// MetaAuditUUID holds the stable audit identifier for the order.
	// Once written it is reused verbatim and never regenerated.
	MetaAuditUUID = "_order_uuid"
)

// vatFieldKeys maps billing countries that deviate from the default VAT
// field to the metadata key carrying their VAT number. Slovakia keeps
// the plain DIČ and the VAT-registered IČ DPH in separate fields; the
// registry lookup needs the prefixed one.
var vatFieldKeys = map[string]string{
	"SK": MetaSlovakVatNumber,
}

// VatFieldKey returns the metadata key holding the VAT number to verify
// for the given billing country.
func VatFieldKey(countryCode string) string {
	if key, ok := vatFieldKeys[countryCode]; ok {
		return key
	}
	return MetaTaxID
}
