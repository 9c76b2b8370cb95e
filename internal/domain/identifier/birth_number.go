package identifier

import (
	"regexp"
	"strconv"
	"time"
)

// birthNumberPattern accepts the liberal Birth Number shape: YYMMDD, an
// optional space or slash separator, a 3-digit extension and an optional
// check digit. Numbers issued before 1954 have no check digit.
var birthNumberPattern = regexp.MustCompile(`^\s*(\d\d)(\d\d)(\d\d)[ /]*(\d\d\d)(\d?)\s*$`)

// BirthDate is the date information decoded from a valid Birth Number.
type BirthDate struct {
	Year  int       // full four-digit year after century inference
	Month time.Month
	Day   int
	Date  time.Time // midnight UTC of the decoded birth date
}

// ParseBirthNumber decodes and validates a Czech/Slovak Birth Number
// (rodné číslo). It returns the embedded birth date on success.
//
// Century inference follows the historical numbering scheme: without a
// check digit years below 54 fall into the 1900s and the rest into the
// 1800s; with a check digit years below 54 fall into the 2000s and the
// rest into the 1900s. The check digit, when present, must equal the
// whole nine-digit number mod 11 (with 10 treated as 0).
//
// Month values may carry an administrative offset of +20, +50 or +70;
// the offset is removed before the calendar check. A month of 20 or less
// is never altered.
func ParseBirthNumber(raw string) (BirthDate, error) {
	m := birthNumberPattern.FindStringSubmatch(raw)
	if m == nil {
		return BirthDate{}, ErrMalformedBirthNumber
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if m[5] == "" {
		if year < 54 {
			year += 1900
		} else {
			year += 1800
		}
	} else {
		num, _ := strconv.ParseInt(m[1]+m[2]+m[3]+m[4], 10, 64)
		mod := int(num % 11)
		if mod == 10 {
			mod = 0
		}
		check, _ := strconv.Atoi(m[5])
		if mod != check {
			return BirthDate{}, ErrBirthNumberChecksum
		}

		if year < 54 {
			year += 2000
		} else {
			year += 1900
		}
	}

	// Administrative month offsets: +50 for women since 1954, +20/+70
	// as an overflow extension allowed since 2004.
	switch {
	case month > 70 && year > 2003:
		month -= 70
	case month > 50:
		month -= 50
	case month > 20 && year > 2003:
		month -= 20
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return BirthDate{}, ErrBirthNumberDate
	}

	return BirthDate{
		Year:  year,
		Month: time.Month(month),
		Day:   day,
		Date:  date,
	}, nil
}

// ValidateBirthNumber reports whether raw is a valid Birth Number.
func ValidateBirthNumber(raw string) bool {
	_, err := ParseBirthNumber(raw)
	return err == nil
}
