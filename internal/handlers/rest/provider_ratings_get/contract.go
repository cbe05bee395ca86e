//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=provider_ratings_get_test
package provider_ratings_get

import (
	"context"

	"service/internal/entities"
	ratingservice "service/internal/service/rating"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListProviderRatings(ctx context.Context, providerID int64, filter ratingservice.ListFilter) (*entities.ProviderReputation, []entities.Rating, error)
}
