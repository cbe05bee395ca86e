package provider_profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var profileDTO dto.ProviderProfileUpdate
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return
	}

	profileModifyEntity := entities.ProviderProfileModify{
		ServiceAreas: profileDTO.ServiceAreas,
		Specialties:  profileDTO.Specialties,
	}

	profile, err := h.service.UpdateProviderProfile(r.Context(), caller, profileModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrMissingRequiredFields):
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, matching.ErrNotProvider):
			writeError(h.log, w, http.StatusForbidden, "not_provider", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ProviderProfile{
		ID:           profile.ID,
		ServiceAreas: profile.ServiceAreas,
		Specialties:  profile.Specialties,
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
