// Package models holds the GORM persistence models and their
// conversions to and from the domain types.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/billing"
)

// OrderModel is the persistence model for an order snapshot.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	Number           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	BillingFirstName string          `gorm:"type:varchar(100)"`
	BillingLastName  string          `gorm:"type:varchar(100)"`
	BillingCompany   string          `gorm:"type:varchar(200)"`
	BillingAddress1  string          `gorm:"type:varchar(200)"`
	BillingAddress2  string          `gorm:"type:varchar(200)"`
	BillingCity      string          `gorm:"type:varchar(100)"`
	BillingPostcode  string          `gorm:"type:varchar(20)"`
	BillingCountry   string          `gorm:"type:varchar(2);not null;index"`
	CustomerIP       string          `gorm:"type:varchar(45)"`
	VatExempt        bool            `gorm:"not null;default:false"`
	Total            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Meta []OrderMetaModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderMetaModel is one key/value metadata row attached to an order.
type OrderMetaModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_meta_order_key,priority:1"`
	MetaKey   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_order_meta_order_key,priority:2"`
	MetaValue string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderMetaModel) TableName() string {
	return "order_meta"
}

// OrderNoteModel is one entry in an order's activity trail.
type OrderNoteModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	Private   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderNoteModel) TableName() string {
	return "order_notes"
}

// ToDomain converts the persistence model to a domain Order snapshot.
func (m *OrderModel) ToDomain() *billing.Order {
	meta := make(map[string]string, len(m.Meta))
	for _, row := range m.Meta {
		meta[row.MetaKey] = row.MetaValue
	}
	order := billing.RestoreOrder(m.ID, m.Number, meta)
	order.BillingFirstName = m.BillingFirstName
	order.BillingLastName = m.BillingLastName
	order.BillingCompany = m.BillingCompany
	order.BillingAddress1 = m.BillingAddress1
	order.BillingAddress2 = m.BillingAddress2
	order.BillingCity = m.BillingCity
	order.BillingPostcode = m.BillingPostcode
	order.BillingCountry = m.BillingCountry
	order.CustomerIP = m.CustomerIP
	order.VatExempt = m.VatExempt
	order.Total = m.Total
	order.CreatedAt = m.CreatedAt
	return order
}

// OrderNoteModelFromDomain builds a note row for an order.
func OrderNoteModelFromDomain(orderID uuid.UUID, note billing.Note) *OrderNoteModel {
	return &OrderNoteModel{
		OrderID: orderID,
		Note:    note.Text,
		Private: note.Private,
	}
}
