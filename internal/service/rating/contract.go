//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetRequestByID(ctx context.Context, id int64) (*entities.FreightRequest, error)
	GetSelectedProviderID(ctx context.Context, requestID int64) (int64, error)

	CreateRating(ctx context.Context, ratingModifyEntity entities.RatingModify) (int64, error)
	// RecomputeProviderReputation пересчитывает средний рейтинг и счетчик
	// по всем строкам ratings провайдера. Вызывается в той же транзакции,
	// что и вставка новой оценки.
	RecomputeProviderReputation(ctx context.Context, providerID int64) (*entities.ProviderReputation, error)

	GetProviderReputation(ctx context.Context, providerID int64) (*entities.ProviderReputation, error)
	ListProviderRatings(ctx context.Context, providerID int64, filter ListFilter) ([]entities.Rating, error)
}

type ListFilter struct {
	MinRating *int32
	Limit     int64
	Offset    int64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
