//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_status_changed_test
package request_status_changed

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessRequestStatusChange(ctx context.Context, requestModify entities.FreightRequestModify) (*entities.FreightRequest, error)
}
