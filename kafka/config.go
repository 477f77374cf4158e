package kafka

import (
	"os"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Config holds the Kafka connection settings. The event stream is optional:
// an empty KAFKA_BOOTSTRAP_SERVERS disables it and the studio emits nothing.
type Config struct {
	BootstrapServers string
}

const (
	DefaultProducerAcks      = "all"
	DefaultProducerRetries   = 3
	DefaultProducerBatchSize = 16384
	DefaultProducerLingerMs  = 10
)

// NewConfigFromEnv reads Kafka settings from the environment. Returns nil when
// no bootstrap servers are configured.
func NewConfigFromEnv() *Config {
	bootstrapServers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if bootstrapServers == "" {
		return nil
	}
	return &Config{BootstrapServers: bootstrapServers}
}

// ProducerConfig returns the confluent producer config map.
func (c *Config) ProducerConfig() kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers": c.BootstrapServers,
		"acks":              DefaultProducerAcks,
		"retries":           DefaultProducerRetries,
		"batch.size":        DefaultProducerBatchSize,
		"linger.ms":         DefaultProducerLingerMs,
	}
}
