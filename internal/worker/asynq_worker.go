package worker

import (
	"context"
	"encoding/json"

	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/provider"
	"github.com/subhe-sadik/shop-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles background tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
}

// handleOrderCreated runs the per-order notification flow. A non-nil return
// redelivers the task; terminal outcomes swallow their errors downstream.
func (c *Consumer) handleOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_created_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderNotifyService == nil {
		logger.Warnw("worker_order_created_skip_notify_service_nil", "order_id", payload.OrderID)
		return nil
	}
	return c.OrderNotifyService.ProcessOrderCreated(payload.OrderID)
}
