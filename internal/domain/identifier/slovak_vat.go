package identifier

import "strings"

// ValidateSlovakTaxID reports whether raw is a well-formed Slovak Tax ID
// (DIČ): exactly 10 digits after whitespace removal. The Slovak modulus
// checksum is deliberately not enforced; the financial administration
// accepts historically issued numbers that do not satisfy it, so the
// check stays format-only.
func ValidateSlovakTaxID(raw string) bool {
	dic := stripSpaces(raw)
	return len(dic) == 10 && isDigits(dic)
}

// ValidateSlovakVatNumber reports whether raw is a well-formed Slovak VAT
// number (IČ DPH): the literal prefix "SK" followed by exactly 10 digits.
// Checksum handling matches ValidateSlovakTaxID.
func ValidateSlovakVatNumber(raw string) bool {
	vat := stripSpaces(raw)
	if !strings.HasPrefix(vat, "SK") {
		return false
	}
	digits := vat[len("SK"):]
	return len(digits) == 10 && isDigits(digits)
}
