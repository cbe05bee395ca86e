//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_post_test
package rating_post

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
	SubmitRating(ctx context.Context, caller entities.Identity, requestID int64, value int32, review string) (int64, error)
}
