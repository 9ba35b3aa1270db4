// Package kafka publishes in-app notifications to the notification topic.
// Messages are keyed by alert ID so consumers can deduplicate the
// at-least-once delivery the outbox gives them.
package kafka

import (
	"context"
	"strconv"

	"github.com/segmentio/kafka-go"

	"fulfillment/internal/core/ports"
)

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationPublisher implements NotificationPublisher over a Kafka topic.
type NotificationPublisher struct {
	writer messageWriter
}

// NewNotificationPublisher creates a publisher writing to the given topic.
func NewNotificationPublisher(address, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(address),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish writes one notification to the topic.
func (p *NotificationPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(notification.AlertID.Int64(), 10)),
		Value: notification.Payload,
	})
}

// Close releases the underlying writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
