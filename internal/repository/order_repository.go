package repository

import (
	"errors"
	"time"

	"github.com/subhe-sadik/shop-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository order persistence.
type OrderRepository interface {
	Create(order *models.Order, products []models.OrderProduct) error
	GetByID(id uint) (*models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	CountRecentByPhone(phone string, since time.Time) (int64, error)
	UpdateStatus(id uint, status string) error
	UpdateFields(id uint, updates map[string]interface{}) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn inside a database transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create writes the order and its product snapshot rows atomically.
func (r *GormOrderRepository) Create(order *models.Order, products []models.OrderProduct) error {
	if order == nil {
		return errors.New("nil order")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].OrderID = order.ID
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID fetches an order with its product rows, nil when absent.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Products").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAdmin lists orders for the back office.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.Status != "" {
		query = query.Where("order_status = ?", filter.Status)
	}
	if filter.Phone != "" {
		query = query.Where("mobile_phone_number = ?", filter.Phone)
	}
	if filter.Suspicious != nil {
		query = query.Where("suspicious = ?", *filter.Suspicious)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Products").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CountRecentByPhone counts orders for a phone number created after since.
// The window includes the just-created order, so a fresh submission counts 1.
func (r *GormOrderRepository) CountRecentByPhone(phone string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("mobile_phone_number = ? AND created_at > ?", phone, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus sets the order status.
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("order_status", status).Error
}

// UpdateFields applies a partial update to the order row.
func (r *GormOrderRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}
