//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freightrequest_test
package freightrequest

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requestModifyEntity entities.FreightRequestModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.FreightRequest, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]entities.FreightRequest, error)

	// CancelRequest и CompleteRequest - условные переходы статуса:
	// ноль затронутых строк означает, что запрос уже не в допустимом статусе.
	CancelRequest(ctx context.Context, id int64) (bool, error)
	CompleteRequest(ctx context.Context, id int64) (bool, error)

	GetSelectedProviderID(ctx context.Context, requestID int64) (int64, error)
}

type Events interface {
	RequestCompleted(ctx context.Context, requestID, providerID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
