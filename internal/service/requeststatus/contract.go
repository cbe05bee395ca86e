//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requeststatus_test
package requeststatus

import (
	"context"

	"service/internal/entities"
)

type FreightRequestService interface {
	GetRequest(ctx context.Context, id int64) (*entities.FreightRequest, error)
	CompleteRequest(ctx context.Context, id int64) (*entities.FreightRequest, error)
	ForceCancelRequest(ctx context.Context, id int64) (*entities.FreightRequest, error)
}

type (
	ExecuteFn      func(ctx context.Context, requestID int64) error
	HandlerFactory interface {
		GetHandler(status entities.RequestStatusType) (ExecuteFn, error)
	}
)
