package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/application/exemption"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/dto"
)

// MockOrderRepository is a mock implementation of billing.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveMetadata(ctx context.Context, order *billing.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) AddNote(ctx context.Context, orderID uuid.UUID, note billing.Note) error {
	args := m.Called(ctx, orderID, note)
	return args.Error(0)
}

// MockVatRegistry is a mock implementation of billing.VatRegistry
type MockVatRegistry struct {
	mock.Mock
}

func (m *MockVatRegistry) CheckVatNumber(ctx context.Context, vatNumber string) billing.LookupResult {
	args := m.Called(ctx, vatNumber)
	return args.Get(0).(billing.LookupResult)
}

type noopLocker struct{}

func (noopLocker) Acquire(_ context.Context, _ string) (func(), error) {
	return func() {}, nil
}

func newExemptionRouter(orders *MockOrderRepository, registry *MockVatRegistry) *gin.Engine {
	auditor := exemption.NewAuditor(orders, registry, noopLocker{}, zap.NewNop())
	return setupTestRouter(NewExemptionHandler(auditor))
}

func exemptOrder(id uuid.UUID) *billing.Order {
	order := billing.RestoreOrder(id, "1001", map[string]string{
		billing.MetaTaxID: "CZ25596641",
	})
	order.BillingCompany = "Test Company"
	order.VatExempt = true
	order.BillingCountry = "CZ"
	return order
}

func TestExemptionHandler_AuditReturnsRecord(t *testing.T) {
	orderID := uuid.New()
	order := exemptOrder(orderID)

	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)
	orders.On("FindByID", mock.Anything, orderID).Return(order, nil)
	orders.On("SaveMetadata", mock.Anything, order).Return(nil)
	orders.On("AddNote", mock.Anything, orderID, mock.Anything).Return(nil)
	registry.On("CheckVatNumber", mock.Anything, "CZ25596641").Return(billing.Valid())

	router := newExemptionRouter(orders, registry)
	w := postJSON(router, "/api/v1/orders/"+orderID.String()+"/vat-exemption-audit", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    AuditResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, orderID.String(), resp.Data.OrderID)
	assert.NotEmpty(t, resp.Data.AuditUUID)
	assert.Equal(t, "CZ25596641", resp.Data.VatNumber)
	assert.Equal(t, "Valid", resp.Data.Result)
	assert.Empty(t, resp.Data.Detail)
	orders.AssertExpectations(t)
}

func TestExemptionHandler_AuditCarriesLookupFaultDetail(t *testing.T) {
	orderID := uuid.New()
	order := exemptOrder(orderID)

	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)
	orders.On("FindByID", mock.Anything, orderID).Return(order, nil)
	orders.On("SaveMetadata", mock.Anything, order).Return(nil)
	orders.On("AddNote", mock.Anything, orderID, mock.Anything).Return(nil)
	registry.On("CheckVatNumber", mock.Anything, "CZ25596641").
		Return(billing.LookupError("vies responded with status 500"))

	router := newExemptionRouter(orders, registry)
	w := postJSON(router, "/api/v1/orders/"+orderID.String()+"/vat-exemption-audit", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    AuditResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error", resp.Data.Result)
	assert.Equal(t, "vies responded with status 500", resp.Data.Detail)
}

func TestExemptionHandler_AuditGatedOrderReturnsNoContent(t *testing.T) {
	orderID := uuid.New()
	order := exemptOrder(orderID)
	order.VatExempt = false

	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)
	orders.On("FindByID", mock.Anything, orderID).Return(order, nil)

	router := newExemptionRouter(orders, registry)
	w := postJSON(router, "/api/v1/orders/"+orderID.String()+"/vat-exemption-audit", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	registry.AssertNotCalled(t, "CheckVatNumber", mock.Anything, mock.Anything)
}

func TestExemptionHandler_AuditUnknownOrderReturnsNotFound(t *testing.T) {
	orderID := uuid.New()

	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)
	orders.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

	router := newExemptionRouter(orders, registry)
	w := postJSON(router, "/api/v1/orders/"+orderID.String()+"/vat-exemption-audit", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestExemptionHandler_AuditRejectsMalformedOrderID(t *testing.T) {
	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)

	router := newExemptionRouter(orders, registry)
	w := postJSON(router, "/api/v1/orders/not-a-uuid/vat-exemption-audit", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeBadRequest, decodeError(t, w).Code)
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestExemptionHandler_AuditLockTimeoutReturnsConflict(t *testing.T) {
	orderID := uuid.New()

	orders := new(MockOrderRepository)
	registry := new(MockVatRegistry)
	auditor := exemption.NewAuditor(orders, registry, timeoutLocker{}, zap.NewNop())
	router := setupTestRouter(NewExemptionHandler(auditor))

	w := postJSON(router, "/api/v1/orders/"+orderID.String()+"/vat-exemption-audit", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeLockTimeout, decodeError(t, w).Code)
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

type timeoutLocker struct{}

func (timeoutLocker) Acquire(_ context.Context, _ string) (func(), error) {
	return nil, shared.ErrLockTimeout
}
