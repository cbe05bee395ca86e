package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"service/internal/pkg/config"
	"service/pkg/logger"
)

// NewSyncProducer создает синхронный продюсер для доменных событий.
// acks=all и идемпотентность: событие либо записано во все ISR, либо ошибка.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Net.MaxOpenRequests = 1 // требование идемпотентного продюсера

	producerLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, producerLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
