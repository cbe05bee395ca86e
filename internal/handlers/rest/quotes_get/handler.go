package quotes_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/quote"
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

	requestIDStr := mux.Vars(r)["requestId"]
	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	annotatedQuotes, err := h.service.ListQuotes(r.Context(), caller, requestID)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrRequestNotFound):
			writeError(h.log, w, http.StatusNotFound, "request_not_found", err.Error())
		case errors.Is(err, quote.ErrForbidden):
			writeError(h.log, w, http.StatusForbidden, "forbidden", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	quoteDTOs := make([]dto.Quote, len(annotatedQuotes))
	for i, annotated := range annotatedQuotes {
		quoteDTOs[i] = toDTO(annotated)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(quoteDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
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
