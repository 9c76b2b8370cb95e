package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

// DefaultAresBaseURL is the production ARES economic-subjects endpoint.
const DefaultAresBaseURL = "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest"

// AresConfig holds ARES adapter configuration.
type AresConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

func (c *AresConfig) withDefaults() AresConfig {
	cfg := *c
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAresBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return cfg
}

// AresAdapter implements billing.BusinessRegistry against the Czech ARES
// register. Unknown business IDs map to shared.ErrNotFound; other
// failures surface as plain errors for the caller to handle.
type AresAdapter struct {
	config     AresConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAresAdapter creates a new ARES adapter.
func NewAresAdapter(config AresConfig, logger *zap.Logger) *AresAdapter {
	cfg := config.withDefaults()
	return &AresAdapter{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

type aresSubjectResponse struct {
	ICO           string    `json:"ico"`
	ObchodniJmeno string    `json:"obchodniJmeno"`
	DIC           string    `json:"dic"`
	Sidlo         aresSidlo `json:"sidlo"`
}

type aresSidlo struct {
	NazevUlice      string `json:"nazevUlice"`
	CisloDomovni    int    `json:"cisloDomovni"`
	CisloOrientacni int    `json:"cisloOrientacni"`
	NazevObce       string `json:"nazevObce"`
	PSC             int    `json:"psc"`
}

// streetLine renders the Czech street-and-number convention, falling
// back to the municipality when the seat has no named street.
func (s aresSidlo) streetLine() string {
	street := s.NazevUlice
	if street == "" {
		street = s.NazevObce
	}
	if s.CisloDomovni > 0 {
		number := fmt.Sprintf("%d", s.CisloDomovni)
		if s.CisloOrientacni > 0 {
			number = fmt.Sprintf("%d/%d", s.CisloDomovni, s.CisloOrientacni)
		}
		return strings.TrimSpace(street + " " + number)
	}
	return street
}

// FindByBusinessID fetches the registered subject for an 8-digit IČO.
func (a *AresAdapter) FindByBusinessID(ctx context.Context, businessID string) (*billing.BusinessInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.BaseURL+"/ekonomicke-subjekty/"+businessID, nil)
	if err != nil {
		return nil, fmt.Errorf("build ares request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("ares request failed", zap.String("business_id", businessID), zap.Error(err))
		return nil, fmt.Errorf("ares request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read ares response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, shared.ErrNotFound
	default:
		a.logger.Warn("ares returned unexpected status",
			zap.Int("status", resp.StatusCode),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("ares responded with status %d", resp.StatusCode)
	}

	var subject aresSubjectResponse
	if err := json.Unmarshal(body, &subject); err != nil {
		return nil, fmt.Errorf("decode ares response: %w", err)
	}

	info := &billing.BusinessInfo{
		BusinessID: subject.ICO,
		Name:       subject.ObchodniJmeno,
		TaxID:      subject.DIC,
		Address:    subject.Sidlo.streetLine(),
		City:       subject.Sidlo.NazevObce,
	}
	if subject.Sidlo.PSC > 0 {
		info.Postcode = fmt.Sprintf("%05d", subject.Sidlo.PSC)
	}
	return info, nil
}
