package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	"service/pkg/logger"
)

const (
	TopicQuoteAccepted    = "freight.quote.accepted"
	TopicRequestCompleted = "freight.request.completed"
)

type Publisher struct {
	log      logger.Logger
	producer syncProducer
	now      func() time.Time
}

func New(log logger.Logger, producer syncProducer) *Publisher {
	publisherLog := log.With(
		logger.NewField("component", "kafka-events"),
	)

	return &Publisher{
		log:      publisherLog,
		producer: producer,
		now:      time.Now,
	}
}

func (p *Publisher) QuoteAccepted(ctx context.Context, acceptance entities.QuoteAcceptance) error {
	event := quoteAcceptedEvent{
		QuoteID:          acceptance.QuoteID,
		FreightRequestID: acceptance.FreightRequestID,
		ShipperID:        acceptance.ShipperID,
		ProviderID:       acceptance.ProviderID,
		OccurredAt:       p.now().UTC(),
	}

	return p.publish(ctx, TopicQuoteAccepted, acceptance.FreightRequestID, event)
}

func (p *Publisher) RequestCompleted(ctx context.Context, requestID, providerID int64) error {
	event := requestCompletedEvent{
		FreightRequestID: requestID,
		ProviderID:       providerID,
		OccurredAt:       p.now().UTC(),
	}

	return p.publish(ctx, TopicRequestCompleted, requestID, event)
}

// publish шлет событие синхронно. Ключ - freight_request_id, чтобы события
// одного запроса попадали в одну партицию и сохраняли порядок.
func (p *Publisher) publish(ctx context.Context, topic string, requestID int64, event any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("publish %s: marshal event: %w", topic, err)
	}

	msg := sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(requestID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(&msg)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(topic, "error").Inc()
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	EventsPublishedTotal.WithLabelValues(topic, "ok").Inc()

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("request", requestID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("event published")

	return nil
}
