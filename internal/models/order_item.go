package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderProduct snapshot of one purchased line, decoupled from the live catalog.
type OrderProduct struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	Name      string         `gorm:"not null" json:"name"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Size      string         `json:"size,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderProduct) TableName() string {
	return "order_products"
}
