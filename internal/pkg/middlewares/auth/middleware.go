package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"service/internal/entities"
	"service/internal/gateway/grpc/identity"
	"service/internal/generated/dto"
	"service/pkg/logger"
)

type identityCtxKey struct{}

const bearerPrefix = "Bearer "

// Middleware проверяет bearer-токен у внешнего identity-provider и кладет
// identity вызывающего в контекст запроса. Без валидного токена дальше
// не пропускаем.
func Middleware(log handlerLogger, verifier IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeError(log, w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)

			callerIdentity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrTokenInvalid) {
					writeError(log, w, http.StatusUnauthorized, "unauthorized", "token is invalid or expired")
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("identity verification failed")
				writeError(log, w, http.StatusServiceUnavailable, "identity_unavailable", "identity provider is unavailable")
				return
			}

			ctx := ContextWithIdentity(r.Context(), *callerIdentity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithIdentity кладет identity вызывающего в контекст.
func ContextWithIdentity(ctx context.Context, callerIdentity entities.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, callerIdentity)
}

// IdentityFromContext достает identity, положенную Middleware.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	callerIdentity, ok := ctx.Value(identityCtxKey{}).(entities.Identity)
	return callerIdentity, ok
}

func writeError(log handlerLogger, w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(dto.Error{Code: code, Message: message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode auth error response")
	}
}
