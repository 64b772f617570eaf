package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

// KafkaPublisher wraps a Kafka producer
type KafkaPublisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &KafkaPublisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishClientActivity publishes a client activity event
func (p *KafkaPublisher) PublishClientActivity(ctx context.Context, event ClientActivityEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.Timestamp = time.Now()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: TopicClientActivity,
		Key:   sarama.StringEncoder(fmt.Sprintf("client_%d", event.ClientID)),
		Value: sarama.ByteEncoder(eventBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("topic", TopicClientActivity).
			Str("event_type", event.EventType).
			Uint("client_id", event.ClientID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	logger.Debug(ctx).
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("client_id", event.ClientID).
		Msg("Client activity event published")

	return nil
}

// Close closes the Kafka producer
func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
