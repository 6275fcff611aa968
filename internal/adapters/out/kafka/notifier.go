package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers []string
	Topic   string
}

// Notifier publishes order status change events to a Kafka topic.
// Messages are keyed by order id so events for the same order stay ordered
// within a partition.
type Notifier struct {
	writer *kafka.Writer
}

func NewNotifier(cfg Config) (*Notifier, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if cfg.Topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &Notifier{writer: w}, nil
}

type statusChangedEvent struct {
	NotificationID string `json:"notification_id"`
	OrderID        string `json:"order_id"`
	RecipientID    string `json:"recipient_id"`
	Status         string `json:"status"`
	Destination    string `json:"destination"`
	DepartureDate  string `json:"departure_date"`
	ReturnDate     string `json:"return_date"`
	OccurredAt     string `json:"occurred_at"`
}

func (n *Notifier) Notify(ctx context.Context, notif *notification.Notification) error {
	if notif == nil {
		return errs.NewValueIsRequiredError("notif")
	}

	event := statusChangedEvent{
		NotificationID: notif.ID().String(),
		OrderID:        notif.OrderID().String(),
		RecipientID:    notif.RecipientID().String(),
		Status:         notif.Status().String(),
		Destination:    notif.Destination(),
		DepartureDate:  notif.Period().Departure().String(),
		ReturnDate:     notif.Period().Return().String(),
		OccurredAt:     notif.CreatedAt().String(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notif.OrderID().String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write status changed event: %w", err)
	}
	return nil
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
