package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// LineItem one cart line. ID is the composite product/variant key so the
// same product in two sizes occupies two lines.
type LineItem struct {
	ID          string `json:"id"`
	ProductID   uint   `json:"product_id"`
	Name        string `json:"name"`
	UnitPrice   Money  `json:"unit_price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variant_name,omitempty"`
}

// LineItemID builds the composite line identifier for a product/variant pair.
func LineItemID(productID uint, variantName string) string {
	if variantName == "" {
		return fmt.Sprintf("%d", productID)
	}
	return fmt.Sprintf("%d-%s", productID, variantName)
}

// LineItems stores the cart lines as a JSON column.
type LineItems []LineItem

// Value implements driver.Valuer.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LineItems{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, isStr := value.(string); isStr {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, l)
}

// Cart persisted cart per storefront session key. Totals are never stored;
// they are recomputed from Items on every load.
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CartKey   string         `gorm:"uniqueIndex;not null" json:"cart_key"`
	Items     LineItems      `gorm:"type:json" json:"items"`
	IsOpen    bool           `gorm:"default:false" json:"is_open"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}
