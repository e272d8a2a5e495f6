package models

import (
	"time"

	"gorm.io/gorm"
)

// Order a placed order. Product rows are immutable snapshots; totals are
// computed server-side at submission and never changed afterwards. The
// Suspicious / Email* fields are written once by the order-created worker.
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	FullName          string         `gorm:"not null" json:"full_name"`
	MobilePhoneNumber string         `gorm:"index;not null" json:"mobile_phone_number"`
	Address           string         `gorm:"type:text;not null" json:"address"`
	ShippingZone      string         `gorm:"not null" json:"shipping_zone"`
	Email             string         `json:"email,omitempty"`
	OrderNotes        string         `gorm:"type:text" json:"order_notes,omitempty"`
	Subtotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DeliveryCharge    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_charge"`
	TotalAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	PaymentMethod     string         `gorm:"not null" json:"payment_method"`
	OrderStatus       string         `gorm:"index;not null" json:"order_status"`
	Suspicious        bool           `gorm:"default:false;index" json:"suspicious"`
	RateLimitedAt     *time.Time     `json:"rate_limited_at,omitempty"`
	EmailSent         *bool          `json:"email_sent,omitempty"`
	EmailSentAt       *time.Time     `json:"email_sent_at,omitempty"`
	EmailFailedAt     *time.Time     `json:"email_failed_at,omitempty"`
	EmailError        string         `json:"email_error,omitempty"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Products []OrderProduct `gorm:"foreignKey:OrderID" json:"products,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
