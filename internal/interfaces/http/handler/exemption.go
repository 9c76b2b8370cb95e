package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/morvy/kybernaut-ic-dic/internal/application/exemption"
	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/dto"
)

// ExemptionHandler triggers the VAT-exemption audit for an order. The
// host platform's order-status hook calls this endpoint.
type ExemptionHandler struct {
	BaseHandler
	auditor *exemption.Auditor
}

// NewExemptionHandler creates a new ExemptionHandler
func NewExemptionHandler(auditor *exemption.Auditor) *ExemptionHandler {
	return &ExemptionHandler{auditor: auditor}
}

// RegisterRoutes registers the order audit route
func (h *ExemptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("/:id/vat-exemption-audit", h.Audit)
	}
}

// AuditResponse reports the audit outcome for an annotated order.
type AuditResponse struct {
	OrderID   string `json:"order_id"`
	AuditUUID string `json:"audit_uuid"`
	VatNumber string `json:"vat_number"`
	Result    string `json:"result"`
	Detail    string `json:"detail,omitempty"`
}

// Audit runs the exemption audit workflow for one order.
// Responses: 404 for an unknown order, 204 when the order is gated out
// (not a company or not VAT exempt), 200 with the audit record when a
// note was written.
func (h *ExemptionHandler) Audit(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "order id must be a UUID")
		return
	}
	orderID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "order id must be a UUID")
		return
	}

	record, err := h.auditor.AnnotateIfExempt(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if record == nil {
		h.NoContent(c)
		return
	}

	h.Success(c, AuditResponse{
		OrderID:   record.OrderID.String(),
		AuditUUID: record.AuditUUID,
		VatNumber: record.VatNumber,
		Result:    record.Result.Status.String(),
		Detail:    record.Result.Detail,
	})
}
