package freight_request_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestEntity, err := h.service.CancelRequest(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, freightrequest.ErrRequestNotFound):
			writeError(h.log, w, http.StatusNotFound, "request_not_found", err.Error())
		case errors.Is(err, freightrequest.ErrForbidden):
			writeError(h.log, w, http.StatusForbidden, "forbidden", err.Error())
		case errors.Is(err, freightrequest.ErrRequestClosed):
			writeError(h.log, w, http.StatusBadRequest, "request_closed", err.Error())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDTO(*requestEntity))
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
