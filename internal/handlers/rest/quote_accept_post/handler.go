package quote_accept_post

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

	quoteIDStr := mux.Vars(r)["quoteId"]
	quoteID, err := strconv.ParseInt(quoteIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	acceptance, err := h.service.AcceptQuote(r.Context(), caller, quoteID)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrQuoteNotFound):
			writeError(h.log, w, http.StatusNotFound, "quote_not_found", err.Error())
		case errors.Is(err, quote.ErrRequestNotFound):
			writeError(h.log, w, http.StatusNotFound, "request_not_found", err.Error())
		case errors.Is(err, quote.ErrForbidden):
			writeError(h.log, w, http.StatusForbidden, "forbidden", err.Error())
		case errors.Is(err, quote.ErrQuoteExpired):
			writeError(h.log, w, http.StatusBadRequest, "quote_expired", err.Error())
		case errors.Is(err, quote.ErrRequestClosed):
			writeError(h.log, w, http.StatusBadRequest, "request_closed", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteAcceptResponse{
		QuoteID:          acceptance.QuoteID,
		FreightRequestID: acceptance.FreightRequestID,
		ProviderID:       acceptance.ProviderID,
		RequestStatus:    acceptance.RequestStatus.String(),
		RejectedQuotes:   acceptance.RejectedQuotes,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
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
