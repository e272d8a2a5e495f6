package worker

import (
	"context"
	"testing"

	"github.com/subhe-sadik/shop-api/internal/provider"
	"github.com/subhe-sadik/shop-api/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleOrderCreatedBadPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderCreated, []byte("not-json"))
	if err := consumer.handleOrderCreated(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error for redelivery")
	}
}

func TestHandleOrderCreatedZeroOrderID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderCreated, []byte(`{"order_id":0}`))
	if err := consumer.handleOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("zero order id must be dropped, not retried: %v", err)
	}
}

func TestHandleOrderCreatedNilNotifyService(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderCreated, []byte(`{"order_id":7}`))
	if err := consumer.handleOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("missing service must be dropped, not retried: %v", err)
	}
}
