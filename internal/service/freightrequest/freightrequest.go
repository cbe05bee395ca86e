package freightrequest

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/pkg/logger"
)

type FreightRequest struct {
	log        logger.Logger
	repository Repository
	events     Events
	txManager  TxManager
}

func New(log logger.Logger, repository Repository, events Events, txManager TxManager) *FreightRequest {
	return &FreightRequest{
		log:        log,
		repository: repository,
		events:     events,
		txManager:  txManager,
	}
}

// CreateRequest публикует новый запрос на перевозку со статусом pending.
func (s *FreightRequest) CreateRequest(
	ctx context.Context,
	caller entities.Identity,
	requestModify entities.FreightRequestModify,
) (int64, error) {
	if caller.Role != entities.RoleShipper {
		return 0, ErrNotShipper
	}

	if requestModify.FreightType == nil ||
		requestModify.Origin == nil ||
		requestModify.Destination == nil ||
		requestModify.CargoDetails == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidFreightType(requestModify.FreightType.String()) {
		return 0, ErrInvalidFreightType
	}
	if !isValidLocation(*requestModify.Origin) || !isValidLocation(*requestModify.Destination) {
		return 0, ErrMissingRequiredFields
	}
	if requestModify.Weight != nil && !requestModify.Weight.IsPositive() {
		return 0, ErrInvalidWeight
	}

	if requestModify.Urgency == nil {
		defaultUrgency := entities.DefaultUrgency
		requestModify.Urgency = &defaultUrgency
	} else if !isValidUrgency(requestModify.Urgency.String()) {
		return 0, ErrInvalidUrgency
	}

	requestModify.ShipperID = &caller.UserID

	id, err := s.repository.Create(ctx, requestModify)
	if err != nil {
		return 0, fmt.Errorf("create freight request: %w", err)
	}

	return id, nil
}

func (s *FreightRequest) GetRequest(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	request, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get freight request: %w", err)
	}

	return request, nil
}

func (s *FreightRequest) ListRequests(
	ctx context.Context,
	filter entities.RequestFilter,
) ([]entities.FreightRequest, error) {
	requests, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list freight requests: %w", err)
	}

	return requests, nil
}

// CancelRequest переводит запрос в cancelled из любого нетерминального статуса.
// Исторические котировки при этом не удаляются, только замораживаются.
func (s *FreightRequest) CancelRequest(
	ctx context.Context,
	caller entities.Identity,
	id int64,
) (*entities.FreightRequest, error) {
	var cancelled *entities.FreightRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get freight request: %w", err)
		}

		if request.ShipperID != caller.UserID {
			return ErrForbidden
		}

		ok, err := s.repository.CancelRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("cancel freight request: %w", err)
		}
		if !ok {
			return ErrRequestClosed
		}

		request.Status = entities.RequestCancelled
		cancelled = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// ForceCancelRequest - отмена по внешнему сигналу (событие из Kafka), без
// проверки владельца: источником события доверяем.
func (s *FreightRequest) ForceCancelRequest(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	var cancelled *entities.FreightRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get freight request: %w", err)
		}

		ok, err := s.repository.CancelRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("cancel freight request: %w", err)
		}
		if !ok {
			return ErrRequestClosed
		}

		request.Status = entities.RequestCancelled
		cancelled = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// CompleteRequest - переход in_progress -> completed по внешнему сигналу о
// завершении перевозки. После коммита публикует пару (запрос, провайдер)
// для агрегатора рейтингов.
func (s *FreightRequest) CompleteRequest(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	var (
		completed  *entities.FreightRequest
		providerID int64
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get freight request: %w", err)
		}

		ok, err := s.repository.CompleteRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("complete freight request: %w", err)
		}
		if !ok {
			return ErrRequestNotInProgress
		}

		providerID, err = s.repository.GetSelectedProviderID(ctx, id)
		if err != nil {
			return fmt.Errorf("get selected provider: %w", err)
		}

		request.Status = entities.RequestCompleted
		completed = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.events.RequestCompleted(ctx, id, providerID)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("request_id", id),
		).Error("publish request.completed event")
	}

	return completed, nil
}
