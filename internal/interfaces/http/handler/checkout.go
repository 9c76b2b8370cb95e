package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/morvy/kybernaut-ic-dic/internal/application/checkout"
)

// CheckoutHandler validates checkout billing fields and serves the
// business-registry autofill lookup.
type CheckoutHandler struct {
	BaseHandler
	fields *checkout.FieldService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(fields *checkout.FieldService) *CheckoutHandler {
	return &CheckoutHandler{fields: fields}
}

// RegisterRoutes registers the checkout and registry routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chk := rg.Group("/checkout")
	{
		chk.POST("/validate", h.ValidateFields)
	}
	registry := rg.Group("/registry")
	{
		registry.GET("/business/:ico", h.LookupBusiness)
	}
}

// ValidateFieldsRequest carries the billing identifier fields under
// their checkout field names.
type ValidateFieldsRequest struct {
	Country        string `json:"billing_country" binding:"required,len=2"`
	Company        string `json:"billing_company"`
	BusinessID     string `json:"billing_ic"`
	TaxID          string `json:"billing_dic"`
	VatNumber      string `json:"billing_dic_dph"`
	PersonalNumber string `json:"billing_rc"`
}

// ValidateFieldsResponse reports per-field validation messages. An
// empty Errors map means every field is acceptable.
type ValidateFieldsResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// ValidateFields checks the billing identifier fields for a country.
func (h *CheckoutHandler) ValidateFields(c *gin.Context) {
	var req ValidateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	errs := h.fields.ValidateBillingFields(checkout.BillingFields{
		Country:        req.Country,
		Company:        req.Company,
		BusinessID:     req.BusinessID,
		TaxID:          req.TaxID,
		VatNumber:      req.VatNumber,
		PersonalNumber: req.PersonalNumber,
	})

	h.Success(c, ValidateFieldsResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// BusinessLookupResponse is the company record for checkout autofill.
type BusinessLookupResponse struct {
	BusinessID string `json:"business_id"`
	Name       string `json:"name,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Postcode   string `json:"postcode,omitempty"`
}

// LookupBusiness resolves a Business ID against the business registry.
func (h *CheckoutHandler) LookupBusiness(c *gin.Context) {
	businessID := c.Param("ico")

	info, err := h.fields.LookupBusiness(c.Request.Context(), businessID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, BusinessLookupResponse{
		BusinessID: info.BusinessID,
		Name:       info.Name,
		TaxID:      info.TaxID,
		Address:    info.Address,
		City:       info.City,
		Postcode:   info.Postcode,
	})
}
