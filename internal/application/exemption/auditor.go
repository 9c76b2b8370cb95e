// Package exemption implements the VAT-exemption audit workflow: for a
// company order flagged as VAT exempt, verify the VAT number against the
// registry and record an auditable note on the order.
package exemption

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

// Auditor orchestrates the exemption audit for a single order. All
// collaborators are injected; the auditor holds no mutable state and is
// safe for concurrent use across orders.
type Auditor struct {
	orders   billing.OrderRepository
	registry billing.VatRegistry
	locks    shared.OrderLocker
	logger   *zap.Logger
}

// NewAuditor creates a new Auditor.
func NewAuditor(orders billing.OrderRepository, registry billing.VatRegistry, locks shared.OrderLocker, logger *zap.Logger) *Auditor {
	return &Auditor{
		orders:   orders,
		registry: registry,
		locks:    locks,
		logger:   logger,
	}
}

// AnnotateIfExempt runs the audit workflow for one order:
//
//  1. serialize on the order (concurrent calls for the same order queue up),
//  2. load the order snapshot; unknown orders fail the call,
//  3. gate: orders without a company billing name or without the
//     VAT-exemption flag are left untouched,
//  4. ensure a stable audit UUID in order metadata, persisting a freshly
//     generated one before the registry call so a crash mid-workflow
//     still converges on retry,
//  5. check the VAT number against the registry; registry faults are
//     recorded in the note, never escalated,
//  6. append the rendered audit note (publicly visible) and flush any
//     remaining metadata changes.
//
// The returned record is nil when the gate in step 3 short-circuits.
func (a *Auditor) AnnotateIfExempt(ctx context.Context, orderID uuid.UUID) (*billing.ExemptionAuditRecord, error) {
	release, err := a.locks.Acquire(ctx, orderID.String())
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := a.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsCompany() || !order.VatExempt {
		a.logger.Debug("order not eligible for exemption audit",
			zap.String("order_id", orderID.String()),
			zap.Bool("is_company", order.IsCompany()),
			zap.Bool("vat_exempt", order.VatExempt),
		)
		return nil, nil
	}

	vatNumber := order.VatNumber()

	auditUUID := order.Meta(billing.MetaAuditUUID)
	if auditUUID == "" {
		auditUUID = uuid.NewString()
		order.SetMeta(billing.MetaAuditUUID, auditUUID)
		if err := a.orders.SaveMetadata(ctx, order); err != nil {
			return nil, err
		}
	}

	result := a.registry.CheckVatNumber(ctx, vatNumber)
	if result.Status == billing.LookupStatusError {
		a.logger.Warn("vat registry lookup failed",
			zap.String("order_id", orderID.String()),
			zap.String("vat_number", vatNumber),
			zap.String("detail", result.Detail),
		)
	}

	record := billing.ExemptionAuditRecord{
		OrderID:        order.ID,
		AuditUUID:      auditUUID,
		CompanyName:    order.BillingCompany,
		VatNumber:      vatNumber,
		Result:         result,
		BillingAddress: order.FormattedBillingAddress(),
		CustomerIP:     order.CustomerIP,
		OrderCreatedAt: order.CreatedAt,
	}

	if err := a.orders.AddNote(ctx, order.ID, billing.Note{Text: record.Render(), Private: false}); err != nil {
		return nil, err
	}
	if err := a.orders.SaveMetadata(ctx, order); err != nil {
		return nil, err
	}

	a.logger.Info("exemption audit note recorded",
		zap.String("order_id", orderID.String()),
		zap.String("audit_uuid", auditUUID),
		zap.String("result", result.Status.String()),
	)

	return &record, nil
}
