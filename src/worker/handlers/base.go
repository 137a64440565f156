package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"strategy/src/services"
	"strategy/src/utils"
	"strategy/src/worker/controllers"
)

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(controller *controllers.Controller) *Handler {
	return &Handler{Controller: controller}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"status": "error", "message": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"status": "error", "message": httpErr.Message}, httpErr.Code)
	case errors.Is(err, services.ErrSettingsNotFound):
		h.respond(w, nil, map[string]string{"status": "error", "message": err.Error()}, http.StatusNotFound)
	case err != nil:
		h.respond(w, nil, map[string]string{"status": "error", "message": err.Error()}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"status": "error", "message": "Unhandled error"}, http.StatusInternalServerError)
	}
}
