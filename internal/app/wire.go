//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"service/internal/gateway/kafka/events"
	"service/internal/handlers/tasks/quote_expiry"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/request_handle"

	matchingRepo "service/internal/repository/matching"
	quoteRepo "service/internal/repository/quote"
	ratingRepo "service/internal/repository/rating"
	freightRequestService "service/internal/service/freightrequest"
	matchingService "service/internal/service/matching"
	quoteService "service/internal/service/quote"
	ratingService "service/internal/service/rating"
	requestStatusService "service/internal/service/requeststatus"

	"service/pkg/logger"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,
		provideSweepInterval,
		provideValidityWindow,

		provideQuoteRepository,
		provideMatchingRepository,
		provideRatingRepository,

		provideIdentityServiceClient,
		provideIdentityGateway,

		provideServiceQuote,
		provideServiceMatching,
		provideServiceRating,

		provideQuoteExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFreightRequest), new(*freightRequestService.FreightRequest)),
		wire.Bind(new(ServiceQuote), new(*quoteService.Quote)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceRating), new(*ratingService.Rating)),

		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(matchingService.Repository), new(*matchingRepo.Repository)),
		wire.Bind(new(ratingService.Repository), new(*ratingRepo.Repository)),

		wire.Bind(new(quoteService.Events), new(*events.Publisher)),

		wire.Bind(new(quoteService.TxManager), new(*tx.Manager)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ratingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(quote_expiry.Service), new(*quoteService.Quote)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-request-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		serviceSet,

		provideStatusHandlerFactory,
		provideRequestStatusService,

		wire.Bind(new(requestStatusService.FreightRequestService), new(*freightRequestService.FreightRequest)),
		wire.Bind(new(requestStatusService.HandlerFactory), new(*request_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
