package app

import (
	"context"
	"time"

	identityGateway "service/internal/gateway/grpc/identity"
	"service/internal/gateway/kafka/events"
	proto "service/internal/generated/proto/clients"
	available_requests_get "service/internal/handlers/rest/available_requests_get"
	freight_request_cancel_post "service/internal/handlers/rest/freight_request_cancel_post"
	freight_request_get "service/internal/handlers/rest/freight_request_get"
	freight_request_post "service/internal/handlers/rest/freight_request_post"
	freight_requests_get "service/internal/handlers/rest/freight_requests_get"
	provider_profile_put "service/internal/handlers/rest/provider_profile_put"
	provider_ratings_get "service/internal/handlers/rest/provider_ratings_get"
	quote_accept_post "service/internal/handlers/rest/quote_accept_post"
	quote_post "service/internal/handlers/rest/quote_post"
	quotes_get "service/internal/handlers/rest/quotes_get"
	rating_post "service/internal/handlers/rest/rating_post"
	"service/internal/handlers/tasks/quote_expiry"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/request_handle"

	freightRequestRepo "service/internal/repository/freightrequest"
	matchingRepo "service/internal/repository/matching"
	quoteRepo "service/internal/repository/quote"
	ratingRepo "service/internal/repository/rating"
	freightRequestService "service/internal/service/freightrequest"
	matchingService "service/internal/service/matching"
	quoteService "service/internal/service/quote"
	ratingService "service/internal/service/rating"
	requestStatusService "service/internal/service/requeststatus"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type (
	SweepInterval  time.Duration
	ValidityWindow time.Duration
)

type Application struct {
	ServiceFreightRequest ServiceFreightRequest
	ServiceQuote          ServiceQuote
	ServiceMatching       ServiceMatching
	ServiceRating         ServiceRating
	IdentityGateway       *identityGateway.IdentityGateway
	BackgroundWorkers     *background.Worker
}

type ServiceFreightRequest interface {
	freight_request_post.Service
	freight_request_get.Service
	freight_requests_get.Service
	freight_request_cancel_post.Service
}

type ServiceQuote interface {
	quote_post.Service
	quotes_get.Service
	quote_accept_post.Service
}

type ServiceMatching interface {
	available_requests_get.Service
	provider_profile_put.Service
}

type ServiceRating interface {
	rating_post.Service
	provider_ratings_get.Service
}

type KafkaWorkerApp struct {
	StatusService *requestStatusService.Service
}

var serviceSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideFreightRequestRepository,
	provideEventsPublisher,
	provideServiceFreightRequest,

	wire.Bind(new(freightRequestService.Repository), new(*freightRequestRepo.Repository)),
	wire.Bind(new(freightRequestService.Events), new(*events.Publisher)),
	wire.Bind(new(freightRequestService.TxManager), new(*tx.Manager)),
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideFreightRequestRepository(querier *querier.Querier) *freightRequestRepo.Repository {
	return freightRequestRepo.New(querier)
}

func provideQuoteRepository(querier *querier.Querier) *quoteRepo.Repository {
	return quoteRepo.New(querier)
}

func provideMatchingRepository(querier *querier.Querier) *matchingRepo.Repository {
	return matchingRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideEventsPublisher(log logger.Logger, producer sarama.SyncProducer) *events.Publisher {
	return events.New(log, producer)
}

func provideIdentityServiceClient(conn *grpc.ClientConn) proto.IdentityServiceClient {
	return proto.NewIdentityServiceClient(conn)
}

func provideIdentityGateway(client proto.IdentityServiceClient) *identityGateway.IdentityGateway {
	return identityGateway.New(client)
}

func provideServiceFreightRequest(
	log logger.Logger,
	repository freightRequestService.Repository,
	events freightRequestService.Events,
	txManager freightRequestService.TxManager,
) *freightRequestService.FreightRequest {
	return freightRequestService.New(log, repository, events, txManager)
}

func provideServiceQuote(
	log logger.Logger,
	repository quoteService.Repository,
	events quoteService.Events,
	txManager quoteService.TxManager,
	window ValidityWindow,
) *quoteService.Quote {
	return quoteService.New(log, repository, events, txManager, time.Duration(window))
}

func provideServiceMatching(
	repository matchingService.Repository,
	txManager matchingService.TxManager,
) *matchingService.Matching {
	return matchingService.New(repository, txManager)
}

func provideServiceRating(
	repository ratingService.Repository,
	txManager ratingService.TxManager,
) *ratingService.Rating {
	return ratingService.New(repository, txManager)
}

func provideStatusHandlerFactory(requestService requestStatusService.FreightRequestService) *request_handle.StatusHandlerFactory {
	return request_handle.NewStatusHandlerFactory(requestService)
}

// provideRequestStatusService создает сервис для обработки событий Kafka
func provideRequestStatusService(
	requestService requestStatusService.FreightRequestService,
	handlerFactory requestStatusService.HandlerFactory,
) *requestStatusService.Service {
	return requestStatusService.New(requestService, handlerFactory)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.QuoteExpirySweepInterval)
}

func provideValidityWindow(cfg *config.Config) ValidityWindow {
	return ValidityWindow(cfg.Quotes.ValidityWindow)
}

func provideQuoteExpiryTask(
	log logger.Logger,
	quoteService quote_expiry.Service,
	interval SweepInterval,
) *quote_expiry.QuoteExpiry {
	return quote_expiry.NewQuoteExpiry(log, quoteService, time.Duration(interval))
}

func provideTaskList(
	quoteExpiryTask *quote_expiry.QuoteExpiry,
) []background.Task {
	return []background.Task{
		quoteExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
