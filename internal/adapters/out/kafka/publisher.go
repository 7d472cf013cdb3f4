// Package kafka publishes committed order changes to a Kafka topic.
// Publishing is best-effort: failures are logged and never propagate to the
// business operation that already committed.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedMessage is the wire format of an order change event.
type orderChangedMessage struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	LateFee     float64   `json:"lateFee"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderChangedPublisher writes order change events keyed by order ID, so all
// events of one order land on the same partition in commit order.
type OrderChangedPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderChangedPublisher creates a publisher for the given brokers and topic.
func NewOrderChangedPublisher(brokers []string, topic string, logger *slog.Logger) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "kafka_order_publisher"),
	}
}

// PublishOrderChanged emits one event. Errors are logged, not returned: the
// order change is already committed and must not appear to fail.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, e order.ChangedEvent) {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber,
		UserID:      e.UserID.String(),
		Status:      e.Status.String(),
		LateFee:     e.LateFee,
		OccurredAt:  e.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal order changed event",
			"order_id", e.OrderID.String(), "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID.String()),
		Value: payload,
		Time:  e.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order changed event",
			"order_id", e.OrderID.String(), "topic", p.writer.Topic, "error", err)
	}
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
