package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// ProductVariant a purchasable size/weight option of a product.
type ProductVariant struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	OldPrice *Money `json:"old_price,omitempty"`
	InStock  bool   `json:"in_stock"`
}

// ProductVariants stores the variant list as a JSON column.
type ProductVariants []ProductVariant

// Value implements driver.Valuer.
func (v ProductVariants) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (v *ProductVariants) Scan(value interface{}) error {
	if value == nil {
		*v = ProductVariants{}
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
	return json.Unmarshal(bytes, v)
}

// Product catalog item. Either a flat Price or a Variants list prices it.
type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Features    StringArray     `gorm:"type:json" json:"features"`
	Images      StringArray     `gorm:"type:json" json:"images"`
	Price       Money           `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OldPrice    *Money          `gorm:"type:decimal(20,2)" json:"old_price,omitempty"`
	HasVariants bool            `gorm:"default:false" json:"has_variants"`
	Variants    ProductVariants `gorm:"type:json" json:"variants,omitempty"`
	InStock     bool            `gorm:"default:true;index" json:"in_stock"`
	IsActive    bool            `gorm:"default:true;index" json:"is_active"`
	SortOrder   int             `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
