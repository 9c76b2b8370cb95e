package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order snapshot with its metadata rows.
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Meta").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveMetadata upserts the order's staged metadata changes in one
// transaction and discards the staging on success. A call with no staged
// changes is a no-op.
func (r *GormOrderRepository) SaveMetadata(ctx context.Context, order *billing.Order) error {
	dirty := order.DirtyMeta()
	if len(dirty) == 0 {
		return nil
	}

	rows := make([]models.OrderMetaModel, 0, len(dirty))
	now := time.Now()
	for key, value := range dirty {
		rows = append(rows, models.OrderMetaModel{
			OrderID:   order.ID,
			MetaKey:   key,
			MetaValue: value,
			UpdatedAt: now,
		})
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "meta_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"meta_value", "updated_at"}),
		}).
		Create(&rows).Error; err != nil {
		return err
	}

	order.ClearDirtyMeta()
	return nil
}

// AddNote appends a note to the order's activity trail.
func (r *GormOrderRepository) AddNote(ctx context.Context, orderID uuid.UUID, note billing.Note) error {
	model := models.OrderNoteModelFromDomain(orderID, note)
	model.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(model).Error
}

// Ensure GormOrderRepository implements OrderRepository
var _ billing.OrderRepository = (*GormOrderRepository)(nil)
