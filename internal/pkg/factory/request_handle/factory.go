package request_handle

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/service/requeststatus"
)

type StatusHandlerFactory struct {
	requestService requeststatus.FreightRequestService
}

func NewStatusHandlerFactory(requestService requeststatus.FreightRequestService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		requestService: requestService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.RequestStatusType) (requeststatus.ExecuteFn, error) {
	switch status {
	case entities.RequestCompleted:
		return f.completedHandler, nil
	case entities.RequestCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", requeststatus.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, requestID int64) error {
	_, err := f.requestService.CompleteRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("complete freight request %d: %w", requestID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, requestID int64) error {
	_, err := f.requestService.ForceCancelRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("cancel freight request %d: %w", requestID, err)
	}
	return nil
}
