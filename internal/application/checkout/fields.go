// Package checkout validates the tax-identifier billing fields captured
// during checkout and resolves company data from the business registry
// for autofill.
package checkout

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/identifier"
)

// BillingFields is the subset of checkout input this service inspects.
// Empty optional fields are skipped; validation is format/checksum only,
// registry lookups happen separately.
type BillingFields struct {
	Country        string
	Company        string
	BusinessID     string // IČO
	TaxID          string // DIČ
	VatNumber      string // IČ DPH (Slovakia only)
	PersonalNumber string // rodné číslo
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// czTaxIDPattern covers the Czech DIČ shape: CZ prefix and 8-10 digits
// (8 for companies, 9-10 for individuals keyed by birth number).
var czTaxIDPattern = regexp.MustCompile(`^CZ\d{8,10}$`)

// Config toggles the registry-backed behavior, mirroring the shop
// admin's settings.
type Config struct {
	AresCheck bool // verify Business IDs against ARES
	AresFill  bool // expose ARES company data for autofill
}

// FieldService validates checkout billing identifiers and performs
// business-registry lookups.
type FieldService struct {
	registry billing.BusinessRegistry
	cfg      Config
	logger   *zap.Logger
}

// NewFieldService creates a new FieldService.
func NewFieldService(registry billing.BusinessRegistry, cfg Config, logger *zap.Logger) *FieldService {
	return &FieldService{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// ValidateBillingFields checks the identifier fields for the given
// billing country and returns one message per offending field. An empty
// result means the fields are acceptable.
func (s *FieldService) ValidateBillingFields(f BillingFields) FieldErrors {
	errs := make(FieldErrors)

	if f.BusinessID != "" && !identifier.ValidateBusinessID(f.BusinessID) {
		errs["billing_ic"] = "Business ID (IČO) is not valid."
	}

	if f.PersonalNumber != "" && !identifier.ValidateBirthNumber(f.PersonalNumber) {
		errs["billing_rc"] = "Birth Number (rodné číslo) is not valid."
	}

	switch f.Country {
	case "SK":
		if f.TaxID != "" && !identifier.ValidateSlovakTaxID(f.TaxID) {
			errs["billing_dic"] = "Tax ID (DIČ) is not valid."
		}
		if f.VatNumber != "" && !identifier.ValidateSlovakVatNumber(f.VatNumber) {
			errs["billing_dic_dph"] = "VAT Number (IČ DPH) is not valid."
		}
	case "CZ":
		if f.TaxID != "" && !czTaxIDPattern.MatchString(f.TaxID) {
			errs["billing_dic"] = "VAT Number (DIČ) is not valid."
		}
	}

	return errs
}

// LookupBusiness resolves company data for a Business ID from the
// business registry. It rejects malformed Business IDs locally before
// the remote call and reports whether the lookup feature is enabled at
// all via shared.ErrNotFound-style propagation from the registry.
func (s *FieldService) LookupBusiness(ctx context.Context, businessID string) (*billing.BusinessInfo, error) {
	if !s.cfg.AresCheck {
		return nil, ErrLookupDisabled
	}
	if !identifier.ValidateBusinessID(businessID) {
		return nil, ErrInvalidBusinessID
	}

	info, err := s.registry.FindByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if !s.cfg.AresFill {
		// Verification only: confirm existence without exposing the
		// company record for autofill.
		return &billing.BusinessInfo{BusinessID: info.BusinessID}, nil
	}

	s.logger.Debug("business registry match",
		zap.String("business_id", businessID),
		zap.String("name", info.Name),
	)
	return info, nil
}
