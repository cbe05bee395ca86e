//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetProviderByID(ctx context.Context, id int64) (*entities.User, error)
	// ListOpenRequests возвращает запросы в статусах pending/quoted, кроме уже
	// закотированных данным провайдером, упорядоченные по id по возрастанию.
	ListOpenRequests(ctx context.Context, providerID int64, filter entities.RequestFilter) ([]entities.FreightRequest, error)
	UpsertProviderProfile(ctx context.Context, profileModify entities.ProviderProfileModify) (*entities.ProviderProfile, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
