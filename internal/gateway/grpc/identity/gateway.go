package identity

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"service/internal/entities"
	proto "service/internal/generated/proto/clients"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "identity-provider"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type IdentityGateway struct {
	client  client
	retrier retrier
}

func New(client client) *IdentityGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &IdentityGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// VerifyToken обменивает bearer-токен на identity пользователя у внешнего
// Identity Provider. Unauthenticated от провайдера — это не сбой, а
// недействительный токен: наружу уходит ErrTokenInvalid без ретраев.
func (g *IdentityGateway) VerifyToken(ctx context.Context, token string) (*entities.Identity, error) {
	req := proto.VerifyTokenRequest{
		Token: token,
	}

	var resp *proto.VerifyTokenResponse

	err := g.executeWithMetrics(ctx, "VerifyToken", func(ctx context.Context) error {
		var err error
		resp, err = g.client.VerifyToken(ctx, &req)
		return err
	})
	if err != nil {
		if isAuthFailureCode(err) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("gateway identity, verify token: %w", err)
	}

	if resp.Identity == nil {
		return nil, ErrTokenInvalid
	}

	return toDomain(resp.Identity), nil
}

func isAuthFailureCode(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return true
	default:
		return false
	}
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *IdentityGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
