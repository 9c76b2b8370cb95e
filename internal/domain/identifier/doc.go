// Package identifier provides pure validators for Czech and Slovak tax
// identifiers: the 8-digit Business ID (IČO) with its mod-11 check digit,
// the Birth Number (rodné číslo) with its embedded birth date, and the
// Slovak Tax ID (DIČ) and VAT number (IČ DPH).
//
// All validators are total over their input domain and fail closed: any
// input that does not match the expected shape yields false rather than
// an error. No validator performs I/O.
package identifier
