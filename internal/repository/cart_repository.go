package repository

import (
	"errors"

	"github.com/subhe-sadik/shop-api/internal/models"

	"gorm.io/gorm"
)

// CartRepository cart persistence keyed by storefront session.
type CartRepository interface {
	GetByKey(cartKey string) (*models.Cart, error)
	Save(cart *models.Cart) error
	DeleteByKey(cartKey string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByKey loads the cart for a session key, nil when absent.
func (r *GormCartRepository) GetByKey(cartKey string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("cart_key = ?", cartKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Save upserts the cart row by its session key.
func (r *GormCartRepository) Save(cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	if cart.ID != 0 {
		return r.db.Save(cart).Error
	}
	var existing models.Cart
	err := r.db.Where("cart_key = ?", cart.CartKey).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(cart).Error
	}
	if err != nil {
		return err
	}
	cart.ID = existing.ID
	cart.CreatedAt = existing.CreatedAt
	return r.db.Save(cart).Error
}

// DeleteByKey removes the cart row for a session key.
func (r *GormCartRepository) DeleteByKey(cartKey string) error {
	if cartKey == "" {
		return nil
	}
	return r.db.Where("cart_key = ?", cartKey).Delete(&models.Cart{}).Error
}
