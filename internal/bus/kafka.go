package bus

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=mock_bus.go -package=bus

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher forwards wallet events to a Kafka topic for downstream consumers.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a publisher over writer.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes ev keyed by its transaction id, or by the event id for
// events without a transaction.
func (p *KafkaPublisher) Publish(ctx context.Context, ev models.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.ID, "error", err)
		return err
	}

	key := ev.ID
	if ev.Transaction != nil {
		key = ev.Transaction.ID
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", ev.ID, "error", err)
		return err
	}

	logger.Log.Infow("Event published to Kafka", "event_id", ev.ID, "key", key, "kind", ev.Kind)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
