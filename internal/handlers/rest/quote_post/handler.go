package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"service/internal/entities"
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

	var quoteDTO dto.QuoteCreate
	err = json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return
	}

	price, err := decimal.NewFromString(quoteDTO.Price)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "validation_failed", "price is not a valid decimal")
		return
	}

	quoteModifyEntity := entities.QuoteModify{
		FreightRequestID:  &requestID,
		Price:             &price,
		EstimatedDelivery: &quoteDTO.EstimatedDeliveryDate,
		Description:       quoteDTO.Description,
		Terms:             quoteDTO.Terms,
	}

	// Опциональные параметры
	if quoteDTO.InsuranceCoverage != nil {
		insurance, err := decimal.NewFromString(*quoteDTO.InsuranceCoverage)
		if err != nil {
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", "insurance_coverage is not a valid decimal")
			return
		}
		quoteModifyEntity.InsuranceCoverage = &insurance
	}

	created, err := h.service.SubmitQuote(r.Context(), caller, quoteModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrMissingRequiredFields),
			errors.Is(err, quote.ErrInvalidPrice),
			errors.Is(err, quote.ErrInvalidDeliveryDate),
			errors.Is(err, quote.ErrInvalidInsurance):
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, quote.ErrNotProvider):
			writeError(h.log, w, http.StatusForbidden, "not_provider", err.Error())
		case errors.Is(err, quote.ErrRequestNotFound):
			writeError(h.log, w, http.StatusNotFound, "request_not_found", err.Error())
		case errors.Is(err, quote.ErrRequestClosed):
			writeError(h.log, w, http.StatusBadRequest, "request_closed", err.Error())
		case errors.Is(err, quote.ErrQuoteAlreadySubmitted):
			writeError(h.log, w, http.StatusConflict, "duplicate_quote", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteCreateResponse{
		ID:         created.ID,
		ValidUntil: created.ValidUntil,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
