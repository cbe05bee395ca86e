package rating_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/rating"
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

	var ratingDTO dto.RatingCreate
	err = json.NewDecoder(r.Body).Decode(&ratingDTO)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return
	}

	review := ""
	if ratingDTO.Review != nil {
		review = *ratingDTO.Review
	}

	id, err := h.service.SubmitRating(r.Context(), caller, requestID, ratingDTO.Rating, review)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrInvalidRatingValue):
			writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, rating.ErrForbidden):
			writeError(h.log, w, http.StatusForbidden, "forbidden", err.Error())
		case errors.Is(err, rating.ErrRequestNotFound):
			writeError(h.log, w, http.StatusNotFound, "request_not_found", err.Error())
		case errors.Is(err, rating.ErrRequestNotCompleted),
			errors.Is(err, rating.ErrNoSelectedQuote):
			writeError(h.log, w, http.StatusConflict, "request_not_completed", err.Error())
		case errors.Is(err, rating.ErrAlreadyRated):
			writeError(h.log, w, http.StatusConflict, "already_rated", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RatingCreateResponse{
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
