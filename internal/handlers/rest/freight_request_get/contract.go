//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_request_get_test
package freight_request_get

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
	GetRequest(ctx context.Context, id int64) (*entities.FreightRequest, error)
}
