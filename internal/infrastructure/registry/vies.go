// Package registry provides HTTP adapters for the external registries
// the service consults: the EU VIES VAT-number database and the Czech
// ARES business register.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
)

// maxResponseSize caps registry responses (1MB); both registries return
// small JSON documents.
const maxResponseSize = 1 << 20

// DefaultViesBaseURL is the production VIES REST endpoint.
const DefaultViesBaseURL = "https://ec.europa.eu/taxation_customs/vies/rest-api"

// vatNumberShape splits a full VAT number into its member-state prefix
// and the national part. VIES wants the two transmitted separately.
var vatNumberShape = regexp.MustCompile(`^([A-Z]{2})([0-9A-Za-z+*.]{2,12})$`)

// ViesConfig holds VIES adapter configuration.
type ViesConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

func (c *ViesConfig) withDefaults() ViesConfig {
	cfg := *c
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultViesBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return cfg
}

// ViesAdapter implements billing.VatRegistry against the VIES REST API.
// Every failure mode - malformed input, transport fault, non-2xx status,
// undecodable body - folds into a LookupStatusError result so the audit
// workflow can record it instead of aborting.
type ViesAdapter struct {
	config     ViesConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewViesAdapter creates a new VIES adapter.
func NewViesAdapter(config ViesConfig, logger *zap.Logger) *ViesAdapter {
	cfg := config.withDefaults()
	return &ViesAdapter{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

type checkVatRequest struct {
	CountryCode string `json:"countryCode"`
	VatNumber   string `json:"vatNumber"`
}

type checkVatResponse struct {
	CountryCode string `json:"countryCode"`
	VatNumber   string `json:"vatNumber"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}

// CheckVatNumber verifies one VAT number against VIES.
func (a *ViesAdapter) CheckVatNumber(ctx context.Context, vatNumber string) billing.LookupResult {
	m := vatNumberShape.FindStringSubmatch(vatNumber)
	if m == nil {
		return billing.LookupError(fmt.Sprintf("vat number %q does not start with a two-letter country code", vatNumber))
	}
	countryCode, national := m[1], m[2]
	if !billing.IsEUMember(countryCode) {
		return billing.LookupError(fmt.Sprintf("country code %q is not an EU member state", countryCode))
	}

	payload, err := json.Marshal(checkVatRequest{CountryCode: countryCode, VatNumber: national})
	if err != nil {
		return billing.LookupError(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+"/check-vat-number", bytes.NewReader(payload))
	if err != nil {
		return billing.LookupError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("vies request failed", zap.String("vat_number", vatNumber), zap.Error(err))
		return billing.LookupError(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return billing.LookupError(err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("vies returned unexpected status",
			zap.Int("status", resp.StatusCode),
			zap.String("vat_number", vatNumber),
		)
		return billing.LookupError(fmt.Sprintf("vies responded with status %d", resp.StatusCode))
	}

	var result checkVatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return billing.LookupError(fmt.Sprintf("undecodable vies response: %v", err))
	}

	if result.Valid {
		return billing.Valid()
	}
	return billing.Invalid()
}
