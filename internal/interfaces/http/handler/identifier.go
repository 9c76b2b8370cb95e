package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/identifier"
)

// IdentifierHandler validates individual tax identifiers.
type IdentifierHandler struct {
	BaseHandler
}

// NewIdentifierHandler creates a new IdentifierHandler
func NewIdentifierHandler() *IdentifierHandler {
	return &IdentifierHandler{}
}

// RegisterRoutes registers the identifier routes
func (h *IdentifierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	identifiers := rg.Group("/identifiers")
	{
		identifiers.POST("/validate", h.Validate)
	}
}

// ValidateIdentifierRequest selects the identifier kind and carries the
// raw value to check.
type ValidateIdentifierRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=business_id birth_number sk_tax_id sk_vat_number"`
	Value string `json:"value" binding:"required"`
}

// ValidateIdentifierResponse reports the validation outcome. BirthDate
// is only set for valid birth numbers.
type ValidateIdentifierResponse struct {
	Kind      string `json:"kind"`
	Value     string `json:"value"`
	Valid     bool   `json:"valid"`
	BirthDate string `json:"birth_date,omitempty"`
}

// Validate checks one identifier of the requested kind.
func (h *IdentifierHandler) Validate(c *gin.Context) {
	var req ValidateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp := ValidateIdentifierResponse{Kind: req.Kind, Value: req.Value}

	switch req.Kind {
	case "business_id":
		resp.Valid = identifier.ValidateBusinessID(req.Value)
	case "birth_number":
		date, err := identifier.ParseBirthNumber(req.Value)
		if err == nil {
			resp.Valid = true
			resp.BirthDate = date.Date.Format("2006-01-02")
		}
	case "sk_tax_id":
		resp.Valid = identifier.ValidateSlovakTaxID(req.Value)
	case "sk_vat_number":
		resp.Valid = identifier.ValidateSlovakVatNumber(req.Value)
	}

	h.Success(c, resp)
}
