package available_requests_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/matching"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	matchedRequests, err := h.service.ListAvailableRequests(r.Context(), caller, filter)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrNotProvider):
			writeError(h.log, w, http.StatusForbidden, "not_provider", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	matchedDTOs := make([]dto.MatchedRequest, len(matchedRequests))
	for i, matched := range matchedRequests {
		matchedDTOs[i] = toDTO(matched)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(matchedDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.RequestFilter, error) {
	filter := entities.RequestFilter{}
	query := r.URL.Query()

	if val := query.Get("freight_type"); val != "" {
		freightType := entities.FreightType(val)
		filter.FreightType = &freightType
	}
	if val := query.Get("min_weight"); val != "" {
		minWeight, err := decimal.NewFromString(val)
		if err != nil {
			return filter, err
		}
		filter.MinWeight = &minWeight
	}
	if val := query.Get("max_weight"); val != "" {
		maxWeight, err := decimal.NewFromString(val)
		if err != nil {
			return filter, err
		}
		filter.MaxWeight = &maxWeight
	}

	return filter, nil
}

func writeError(log handlerLogger, w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(dto.Error{Code: code, Message: message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode error response")
	}
}
