//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	CreateQuote(ctx context.Context, quoteModifyEntity entities.QuoteModify) (*entities.Quote, error)
	GetQuoteByID(ctx context.Context, id int64) (*entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.AnnotatedQuote, error)
	HasProviderQuote(ctx context.Context, requestID, providerID int64) (bool, error)

	GetRequestByID(ctx context.Context, id int64) (*entities.FreightRequest, error)
	// GetRequestByIDForShare держит разделяемую блокировку строки запроса до конца транзакции.
	GetRequestByIDForShare(ctx context.Context, id int64) (*entities.FreightRequest, error)
	// GetRequestByIDForUpdate блокирует строку запроса до конца транзакции.
	GetRequestByIDForUpdate(ctx context.Context, id int64) (*entities.FreightRequest, error)
	MarkRequestQuoted(ctx context.Context, requestID int64) error
	PromoteRequestInProgress(ctx context.Context, requestID, selectedQuoteID int64) error

	AcceptQuote(ctx context.Context, quoteID int64) error
	RejectSiblings(ctx context.Context, requestID, acceptedQuoteID int64) (int64, error)
	ExpirePendingQuotes(ctx context.Context) (int64, error)
}

type Events interface {
	QuoteAccepted(ctx context.Context, acceptance entities.QuoteAcceptance) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
