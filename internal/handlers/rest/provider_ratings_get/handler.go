package provider_ratings_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
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
	idStr := mux.Vars(r)["id"]
	providerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	reputation, ratings, err := h.service.ListProviderRatings(r.Context(), providerID, filter)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrProviderNotFound):
			writeError(h.log, w, http.StatusNotFound, "provider_not_found", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ratingDTOs := make([]dto.Rating, len(ratings))
	for i, ratingEntity := range ratings {
		ratingDTOs[i] = dto.Rating{
			ID:               ratingEntity.ID,
			FreightRequestID: ratingEntity.FreightRequestID,
			ProviderID:       ratingEntity.ProviderID,
			ShipperID:        ratingEntity.ShipperID,
			Rating:           ratingEntity.Value,
			Review:           ratingEntity.Review,
			CreatedAt:        ratingEntity.CreatedAt,
		}
	}

	response := dto.ProviderRatings{
		ProviderID:    reputation.ProviderID,
		CompanyName:   reputation.CompanyName,
		AverageRating: reputation.Rating.String(),
		TotalRatings:  reputation.TotalRatings,
		Ratings:       ratingDTOs,
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

func parseFilter(r *http.Request) (rating.ListFilter, error) {
	filter := rating.ListFilter{}
	query := r.URL.Query()

	if val := query.Get("min_rating"); val != "" {
		minRating, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return filter, err
		}
		minRating32 := int32(minRating)
		filter.MinRating = &minRating32
	}
	if val := query.Get("limit"); val != "" {
		limit, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	if val := query.Get("offset"); val != "" {
		offset, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Offset = offset
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
