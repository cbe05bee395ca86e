//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=provider_profile_put_test
package provider_profile_put

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
	UpdateProviderProfile(ctx context.Context, caller entities.Identity, profileModify entities.ProviderProfileModify) (*entities.ProviderProfile, error)
}
