package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"strategy/src/schemas"
	"strategy/src/utils"

	"github.com/go-chi/chi/v5"
)

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid request body")
	}
	return nil
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req schemas.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	user, err := h.Controller.CreateUser(r.Context(), req.Username)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, user, http.StatusCreated)
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.Controller.Settings(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var update schemas.SettingsUpdate
	if err := decodeBody(r, &update); err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.Controller.UpdateSettings(r.Context(), userID, &update)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) AddHolding(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.NewHoldingRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	id, err := h.Controller.AddHolding(r.Context(), userID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]int{"id": id}, http.StatusCreated)
}

func (h *Handler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	holdingID, err := strconv.Atoi(chi.URLParam(r, "holdingID"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.RemoveHolding(r.Context(), holdingID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"status": "success", "message": "holding removed"}, http.StatusOK)
}

func (h *Handler) UpdateHoldingField(w http.ResponseWriter, r *http.Request) {
	holdingID, err := strconv.Atoi(chi.URLParam(r, "holdingID"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var update schemas.HoldingFieldUpdate
	if err := decodeBody(r, &update); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateHoldingField(r.Context(), holdingID, &update); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"status": "success", "message": "holding updated"}, http.StatusOK)
}

func (h *Handler) SetEventPriority(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var update schemas.PriorityUpdate
	if err := decodeBody(r, &update); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.SetEventPriority(r.Context(), eventID, update.Priority); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"status": "success", "message": "priority updated"}, http.StatusOK)
}
