package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"trend-studio/logger"
)

// Producer publishes studio events. Emit never blocks request handling on
// broker availability; delivery reports are consumed asynchronously.
type Producer interface {
	Emit(topic string, event any) error
	Close() error
}

// NopProducer is used when Kafka is not configured.
type NopProducer struct{}

func (NopProducer) Emit(string, any) error { return nil }
func (NopProducer) Close() error           { return nil }

type kafkaProducer struct {
	producer *kafka.Producer
}

// NewProducer creates a confluent-kafka producer from config. A nil config
// yields the no-op producer.
func NewProducer(cfg *Config) (Producer, error) {
	if cfg == nil {
		return NopProducer{}, nil
	}

	cm := cfg.ProducerConfig()
	p, err := kafka.NewProducer(&cm)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range p.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				logger.ErrorWithFields("event delivery failed", logger.Fields{
					"topic": *m.TopicPartition.Topic,
					"error": m.TopicPartition.Error.Error(),
				})
			}
		}
	}()

	return &kafkaProducer{producer: p}, nil
}

func (p *kafkaProducer) Emit(topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          payload,
	}, nil)
}

func (p *kafkaProducer) Close() error {
	if remaining := p.producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("kafka producer closed with %d undelivered events", remaining)
	}
	p.producer.Close()
	return nil
}
