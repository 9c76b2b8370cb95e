package billing

import "context"

// BusinessInfo is the company record a business registry returns for a
// Business ID. It backs checkout autofill of the company fields.
type BusinessInfo struct {
	BusinessID string
	Name       string
	TaxID      string
	Address    string
	City       string
	Postcode   string
}

// BusinessRegistry looks up registered companies by Business ID.
// Implementations return shared.ErrNotFound for unknown identifiers.
type BusinessRegistry interface {
	FindByBusinessID(ctx context.Context, businessID string) (*BusinessInfo, error)
}
