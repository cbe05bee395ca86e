package request_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	freightrequestservice "service/internal/service/freightrequest"
	"service/pkg/logger"
)

// statusChangedEvent - событие об изменении статуса перевозки от внешней
// системы (биллинг, трекинг).
type statusChangedEvent struct {
	FreightRequestID int64  `json:"freight_request_id"`
	Status           string `json:"status"`
}

type Handler struct {
	statusService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statusService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statusService:            statusService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("request.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("request.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("request.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("freight_request", event.FreightRequestID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("request.status.changed processing")

	status := entities.RequestStatusType(event.Status)
	requestModify := entities.FreightRequestModify{
		ID:     &event.FreightRequestID,
		Status: &status,
	}

	request, err := h.statusService.ProcessRequestStatusChange(ctx, requestModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, freightrequestservice.ErrRequestNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler unknown freight request")

		case errors.Is(err, freightrequestservice.ErrRequestClosed),
			errors.Is(err, freightrequestservice.ErrRequestNotInProgress):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler status mismatch for freight request")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler failed to process freight request")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("freight_request", request.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", request.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("request.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
