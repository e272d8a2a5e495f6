package repository

import "time"

// ProductListFilter filters the product list query.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	InStock      *bool
	OnlyActive   bool
	WithCategory bool
}

// OrderListFilter filters the admin order list query.
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Phone       string
	Suspicious  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
