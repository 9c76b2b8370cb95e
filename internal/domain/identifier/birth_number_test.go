package identifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthNumber_WithCheckDigit(t *testing.T) {
	// 900720311 % 11 == 7
	bd, err := ParseBirthNumber("9007203117")
	require.NoError(t, err)
	assert.Equal(t, 1990, bd.Year)
	assert.Equal(t, time.July, bd.Month)
	assert.Equal(t, 20, bd.Day)
	assert.Equal(t, time.Date(1990, time.July, 20, 0, 0, 0, 0, time.UTC), bd.Date)
}

func TestParseBirthNumber_FemaleMonthOffset(t *testing.T) {
	// month 57 carries the +50 offset for women; 905720311 % 11 == 1
	bd, err := ParseBirthNumber("9057203111")
	require.NoError(t, err)
	assert.Equal(t, 1990, bd.Year)
	assert.Equal(t, time.July, bd.Month)
}

func TestParseBirthNumber_ModTenTreatedAsZero(t *testing.T) {
	// 900720600 % 11 == 10, which the scheme records as check digit 0
	bd, err := ParseBirthNumber("9007206000")
	require.NoError(t, err)
	assert.Equal(t, 1990, bd.Year)
}

func TestParseBirthNumber_CenturyWithoutCheckDigit(t *testing.T) {
	tests := []struct {
		input string
		year  int
	}{
		{"530101001", 1953}, // year below 54 stays in the 1900s
		{"100101001", 1910},
		{"761231111", 1876}, // year 54 and above falls into the 1800s
		{"700615123", 1870},
	}
	for _, tt := range tests {
		bd, err := ParseBirthNumber(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.year, bd.Year, tt.input)
	}
}

func TestParseBirthNumber_CenturyWithCheckDigit(t *testing.T) {
	// year below 54 with a check digit resolves to the 2000s;
	// 530101001 % 11 == 1
	bd, err := ParseBirthNumber("5301010011")
	require.NoError(t, err)
	assert.Equal(t, 2053, bd.Year)

	// year 54 and above resolves to the 1900s; 900720311 % 11 == 7
	bd, err = ParseBirthNumber("9007203117")
	require.NoError(t, err)
	assert.Equal(t, 1990, bd.Year)
}

func TestParseBirthNumber_PostMillenniumMonthOffsets(t *testing.T) {
	// +70 overflow offset valid only after 2003; 048112000 % 11 == 2
	bd, err := ParseBirthNumber("0481120002")
	require.NoError(t, err)
	assert.Equal(t, 2004, bd.Year)
	assert.Equal(t, time.November, bd.Month)

	// +20 overflow offset valid only after 2003; 042101000 % 11 == 7
	bd, err = ParseBirthNumber("0421010007")
	require.NoError(t, err)
	assert.Equal(t, 2004, bd.Year)
	assert.Equal(t, time.January, bd.Month)
}

func TestParseBirthNumber_MonthBelowTwentyNeverAltered(t *testing.T) {
	bd, err := ParseBirthNumber("9007203117")
	require.NoError(t, err)
	assert.Equal(t, time.July, bd.Month)

	bd, err = ParseBirthNumber("530101001")
	require.NoError(t, err)
	assert.Equal(t, time.January, bd.Month)
}

func TestParseBirthNumber_Separators(t *testing.T) {
	assert.True(t, ValidateBirthNumber("900720/3117"))
	assert.True(t, ValidateBirthNumber("900720 3117"))
	assert.True(t, ValidateBirthNumber("  9007203117  "))
}

func TestParseBirthNumber_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"wrong check digit", "9007203118", ErrBirthNumberChecksum},
		{"invalid calendar date", "9902291113", ErrBirthNumberDate}, // 1999 is not a leap year
		{"too short", "90072031", ErrMalformedBirthNumber},
		{"letters", "90072031ab", ErrMalformedBirthNumber},
		{"separator in wrong place", "90/07203117", ErrMalformedBirthNumber},
		{"empty", "", ErrMalformedBirthNumber},
		{"overflow month not allowed before 2004", "533301001", ErrBirthNumberDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBirthNumber(tt.input)
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, ValidateBirthNumber(tt.input))
		})
	}
}
