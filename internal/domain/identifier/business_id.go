package identifier

import (
	"strings"
	"unicode"
)

// stripSpaces removes all whitespace from s. Validators are liberal in
// what they receive; registries print identifiers with grouping spaces.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ValidateBusinessID reports whether raw is a valid Czech/Slovak Business ID
// (IČO): exactly 8 digits after whitespace removal, with a weighted mod-11
// check digit. The first seven digits are weighted 8..2; the weighted sum
// reduced mod 11 determines the expected eighth digit (0 maps to 1, 1 maps
// to 0, anything else to 11-a).
func ValidateBusinessID(raw string) bool {
	ic := stripSpaces(raw)
	if len(ic) != 8 || !isDigits(ic) {
		return false
	}

	sum := 0
	for i := 0; i < 7; i++ {
		sum += int(ic[i]-'0') * (8 - i)
	}

	var check int
	switch a := sum % 11; a {
	case 0:
		check = 1
	case 1:
		check = 0
	default:
		check = 11 - a
	}

	return int(ic[7]-'0') == check
}
