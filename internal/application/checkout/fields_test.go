package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

// MockBusinessRegistry is a mock implementation of billing.BusinessRegistry
type MockBusinessRegistry struct {
	mock.Mock
}

func (m *MockBusinessRegistry) FindByBusinessID(ctx context.Context, businessID string) (*billing.BusinessInfo, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.BusinessInfo), args.Error(1)
}

func newService(registry billing.BusinessRegistry, cfg Config) *FieldService {
	return NewFieldService(registry, cfg, zap.NewNop())
}

func TestValidateBillingFields(t *testing.T) {
	svc := newService(nil, Config{})

	tests := []struct {
		name       string
		fields     BillingFields
		wantFields []string
	}{
		{
			name:   "empty optional fields pass",
			fields: BillingFields{Country: "CZ", Company: "Acme"},
		},
		{
			name:   "valid czech company",
			fields: BillingFields{Country: "CZ", BusinessID: "25596641", TaxID: "CZ25596641"},
		},
		{
			name:       "invalid business id",
			fields:     BillingFields{Country: "CZ", BusinessID: "12345678"},
			wantFields: []string{"billing_ic"},
		},
		{
			name:       "invalid czech tax id shape",
			fields:     BillingFields{Country: "CZ", TaxID: "25596641"},
			wantFields: []string{"billing_dic"},
		},
		{
			name:   "valid slovak fields",
			fields: BillingFields{Country: "SK", TaxID: "2021853504", VatNumber: "SK2021853504"},
		},
		{
			name:       "slovak tax id too short",
			fields:     BillingFields{Country: "SK", TaxID: "202185350"},
			wantFields: []string{"billing_dic"},
		},
		{
			name:       "slovak vat number missing prefix",
			fields:     BillingFields{Country: "SK", VatNumber: "2021853504"},
			wantFields: []string{"billing_dic_dph"},
		},
		{
			name:       "invalid birth number",
			fields:     BillingFields{Country: "CZ", PersonalNumber: "9007203118"},
			wantFields: []string{"billing_rc"},
		},
		{
			name:   "valid birth number",
			fields: BillingFields{Country: "CZ", PersonalNumber: "900720/3117"},
		},
		{
			name:       "multiple failures reported together",
			fields:     BillingFields{Country: "SK", BusinessID: "123", TaxID: "1", VatNumber: "x"},
			wantFields: []string{"billing_ic", "billing_dic", "billing_dic_dph"},
		},
		{
			name:   "country without rules skips tax id",
			fields: BillingFields{Country: "DE", TaxID: "whatever"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := svc.ValidateBillingFields(tt.fields)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestLookupBusiness(t *testing.T) {
	info := &billing.BusinessInfo{
		BusinessID: "25596641",
		Name:       "Kybernaut s.r.o.",
		TaxID:      "CZ25596641",
		Address:    "Hlavní 1",
		City:       "Praha",
		Postcode:   "11000",
	}

	t.Run("returns full record when autofill enabled", func(t *testing.T) {
		registry := new(MockBusinessRegistry)
		registry.On("FindByBusinessID", mock.Anything, "25596641").Return(info, nil)

		svc := newService(registry, Config{AresCheck: true, AresFill: true})
		got, err := svc.LookupBusiness(context.Background(), "25596641")

		require.NoError(t, err)
		assert.Equal(t, info, got)
	})

	t.Run("hides company record when autofill disabled", func(t *testing.T) {
		registry := new(MockBusinessRegistry)
		registry.On("FindByBusinessID", mock.Anything, "25596641").Return(info, nil)

		svc := newService(registry, Config{AresCheck: true})
		got, err := svc.LookupBusiness(context.Background(), "25596641")

		require.NoError(t, err)
		assert.Equal(t, "25596641", got.BusinessID)
		assert.Empty(t, got.Name)
	})

	t.Run("rejects invalid business id before the remote call", func(t *testing.T) {
		registry := new(MockBusinessRegistry)

		svc := newService(registry, Config{AresCheck: true})
		_, err := svc.LookupBusiness(context.Background(), "12345678")

		assert.ErrorIs(t, err, ErrInvalidBusinessID)
		registry.AssertNotCalled(t, "FindByBusinessID", mock.Anything, mock.Anything)
	})

	t.Run("disabled lookup", func(t *testing.T) {
		svc := newService(nil, Config{})
		_, err := svc.LookupBusiness(context.Background(), "25596641")
		assert.ErrorIs(t, err, ErrLookupDisabled)
	})

	t.Run("propagates not found", func(t *testing.T) {
		registry := new(MockBusinessRegistry)
		registry.On("FindByBusinessID", mock.Anything, "25596641").Return(nil, shared.ErrNotFound)

		svc := newService(registry, Config{AresCheck: true})
		_, err := svc.LookupBusiness(context.Background(), "25596641")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
