package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlovakTaxID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ten digits", "1234567890", true},
		{"ten digits with spaces", "123 456 7890", true},
		{"nine digits", "123456789", false},
		{"eleven digits", "12345678901", false},
		{"letters", "12345678ab", false},
		{"prefixed", "SK1234567890", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSlovakTaxID(tt.input))
		})
	}
}

func TestValidateSlovakVatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"prefixed ten digits", "SK1234567890", true},
		{"prefixed with spaces", "SK 1234567890", true},
		{"missing prefix", "1234567890", false},
		{"nine digits", "SK123456789", false},
		{"eleven digits", "SK12345678901", false},
		{"lowercase prefix", "sk1234567890", false},
		{"czech prefix", "CZ1234567890", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSlovakVatNumber(tt.input))
		})
	}
}
