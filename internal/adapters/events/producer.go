package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes domain events to a single Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
	return &KafkaPublisher{writer: writer}
}

// Publish marshals the event as JSON and writes it keyed by key, so events
// for one vendor stay on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
