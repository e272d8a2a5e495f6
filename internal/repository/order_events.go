package repository

import (
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/queue"

	"gorm.io/gorm"
)

// NotifyingOrderRepository decorates an OrderRepository so every successful
// create enqueues an order-created task. Checkout code stays unaware of the
// notification pipeline; a lost enqueue only costs the admin email, never
// the order itself.
type NotifyingOrderRepository struct {
	OrderRepository
	queue *queue.Client
}

// NewNotifyingOrderRepository wraps an order repository with create events.
func NewNotifyingOrderRepository(inner OrderRepository, queueClient *queue.Client) *NotifyingOrderRepository {
	return &NotifyingOrderRepository{
		OrderRepository: inner,
		queue:           queueClient,
	}
}

// Create persists the order, then fires the order-created event.
func (r *NotifyingOrderRepository) Create(order *models.Order, products []models.OrderProduct) error {
	if err := r.OrderRepository.Create(order, products); err != nil {
		return err
	}
	if r.queue != nil && order != nil {
		if err := r.queue.EnqueueOrderCreated(order.ID); err != nil {
			logger.Errorw("order_created_enqueue_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}
	return nil
}

// WithTx binds the inner repository to a transaction, keeping the decorator.
func (r *NotifyingOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &NotifyingOrderRepository{
		OrderRepository: r.OrderRepository.WithTx(tx),
		queue:           r.queue,
	}
}
