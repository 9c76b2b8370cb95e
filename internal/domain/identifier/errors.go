package identifier

import "errors"

var (
	// ErrMalformedBirthNumber indicates the input does not match the
	// YYMMDD/EEEC Birth Number shape at all.
	ErrMalformedBirthNumber = errors.New("identifier: malformed birth number")

	// ErrBirthNumberChecksum indicates the supplied check digit does not
	// match the mod-11 checksum.
	ErrBirthNumberChecksum = errors.New("identifier: birth number checksum mismatch")

	// ErrBirthNumberDate indicates the embedded date is not a real
	// calendar date.
	ErrBirthNumberDate = errors.New("identifier: birth number encodes an invalid date")
)
