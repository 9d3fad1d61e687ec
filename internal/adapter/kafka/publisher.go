// Package kafka publishes entry change events.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

const schemaVersion = "v1"

// Publisher sends entry events to a topic, keyed by entry id so events for
// one entry stay ordered within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

// NewConfig returns the sarama producer configuration used by the service.
func NewConfig(cfg config.KafkaConfig) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Version = sarama.V2_8_0_0

	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Timeout = 5 * time.Second
	sc.Producer.MaxMessageBytes = 1024 * 1024
	return sc
}

// NewPublisher connects a synchronous producer to the configured brokers.
func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.BrokerList(), NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewWithProducer(producer, cfg.Topic, logger), nil
}

// NewWithProducer wraps an existing producer.
func NewWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      logger.With("component", "kafka_publisher"),
	}
}

// Publish sends one event. Failures are returned to the caller, which
// decides whether they matter.
func (p *Publisher) Publish(ctx context.Context, ev domain.EntryEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal entry event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.EntryID.String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
			{Key: []byte("schema_version"), Value: []byte(schemaVersion)},
		},
		Timestamp: ev.OccurredAt,
	}
	if ev.Entry != nil {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte("entry_schema"), Value: []byte(ev.Entry.Schema)})
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", ev.Type, p.topic, err)
	}

	p.log.DebugContext(ctx, "entry event published",
		slog.String("event_type", string(ev.Type)),
		slog.String("entry_id", ev.EntryID.String()),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Nop discards events. It is used when no brokers are configured.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, domain.EntryEvent) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }
