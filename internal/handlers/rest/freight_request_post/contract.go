//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_request_post_test
package freight_request_post

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
	CreateRequest(ctx context.Context, caller entities.Identity, requestModify entities.FreightRequestModify) (int64, error)
}
