package requeststatus

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

type Service struct {
	requestService FreightRequestService
	statusFactory  HandlerFactory
}

func New(requestService FreightRequestService, statusFactory HandlerFactory) *Service {
	return &Service{
		requestService: requestService,
		statusFactory:  statusFactory,
	}
}

// ProcessRequestStatusChange применяет статус из события к запросу.
// Сначала проверяем, что запрос вообще существует, затем диспатчим по
// статусу события через фабрику.
func (s *Service) ProcessRequestStatusChange(ctx context.Context, requestModify entities.FreightRequestModify) (*entities.FreightRequest, error) {
	if requestModify.ID == nil || requestModify.Status == nil {
		return nil, fmt.Errorf("freight request id and status are required")
	}

	request, err := s.requestService.GetRequest(ctx, *requestModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get freight request: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*requestModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return request, nil
		}
		return request, err
	}

	if err := executeFn(ctx, request.ID); err != nil {
		return nil, err
	}

	request.Status = *requestModify.Status
	return request, nil
}
