package billing

// countryNames maps ISO 3166-1 alpha-2 codes of the EU member states
// (plus a few common trading partners) to English names for audit notes.
// The host platform localizes its own UI; audit notes use a fixed table.
var countryNames = map[string]string{
	"AT": "Austria",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"CY": "Cyprus",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"EE": "Estonia",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GR": "Greece",
	"HR": "Croatia",
	"HU": "Hungary",
	"IE": "Ireland",
	"IT": "Italy",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MT": "Malta",
	"NL": "Netherlands",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"SE": "Sweden",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"CH": "Switzerland",
	"GB": "United Kingdom",
	"NO": "Norway",
	"UA": "Ukraine",
	"US": "United States",
}

// CountryName returns the English name for an ISO country code, falling
// back to the code itself for anything unknown.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

// IsEUMember reports whether the country code belongs to an EU member
// state whose VAT numbers the VIES registry can verify.
func IsEUMember(code string) bool {
	switch code {
	case "AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "EL", "ES",
		"FI", "FR", "GR", "HR", "HU", "IE", "IT", "LT", "LU", "LV",
		"MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK":
		return true
	}
	return false
}
