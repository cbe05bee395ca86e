package freight_request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/freightrequest"
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

	var requestDTO dto.FreightRequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return
	}

	freightType := entities.FreightType(requestDTO.FreightType)
	requestModifyEntity := entities.FreightRequestModify{
		FreightType:  &freightType,
		Origin:       &requestDTO.Origin,
		Destination:  &requestDTO.Destination,
		CargoDetails: &requestDTO.CargoDetails,
		Dimensions:   requestDTO.Dimensions,
		Deadline:     requestDTO.Deadline,
		BudgetRange:  requestDTO.BudgetRange,
	}

	// Опциональные параметры
	if requestDTO.Weight != nil {
		weight, err := decimal.NewFromString(*requestDTO.Weight)
		if err != nil {
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", "weight is not a valid decimal")
			return
		}
		requestModifyEntity.Weight = &weight
	}
	if requestDTO.Urgency != nil {
		urgency := entities.UrgencyType(*requestDTO.Urgency)
		requestModifyEntity.Urgency = &urgency
	}

	id, err := h.service.CreateRequest(r.Context(), caller, requestModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, freightrequest.ErrMissingRequiredFields),
			errors.Is(err, freightrequest.ErrInvalidFreightType),
			errors.Is(err, freightrequest.ErrInvalidUrgency),
			errors.Is(err, freightrequest.ErrInvalidWeight):
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, freightrequest.ErrNotShipper):
			writeError(h.log, w, http.StatusForbidden, "not_shipper", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FreightRequestCreateResponse{
		ID: id,
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
