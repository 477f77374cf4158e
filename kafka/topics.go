package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"trend-studio/logger"
)

// TopicStudioEvents carries every studio lifecycle event.
const TopicStudioEvents = "studio.events"

// CreateTopicsIfNotExists creates the studio topic when missing.
func CreateTopicsIfNotExists(kafkaConfig *Config) error {
	if kafkaConfig == nil {
		return fmt.Errorf("kafka config is required")
	}

	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": kafkaConfig.BootstrapServers,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	topics := []kafka.TopicSpecification{
		{
			Topic:             TopicStudioEvents,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := adminClient.CreateTopics(ctx, topics)
	if err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}

	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			logger.Log.Errorf("failed to create topic %s: %v", result.Topic, result.Error)
		} else {
			logger.Log.Infof("topic %s is ready", result.Topic)
		}
	}

	return nil
}
