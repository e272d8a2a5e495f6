package queue

import (
	"encoding/json"

	"github.com/subhe-sadik/shop-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreated fires once per created order.
	TaskOrderCreated = constants.TaskOrderCreated
)

// OrderCreatedPayload order-created task payload.
type OrderCreatedPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderCreatedTask builds an order-created task.
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}
