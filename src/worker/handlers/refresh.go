package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) userID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "userID"))
}

// RefreshAssets triggers a full price refresh. Synchronous: the response is
// written only once the refresh cycle finished.
func (h *Handler) RefreshAssets(w http.ResponseWriter, r *http.Request) {
	result, err := h.Controller.RefreshAssets(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) RefreshDividends(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	result, err := h.Controller.RefreshDividends(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) GenerateCandidates(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	result, err := h.Controller.GenerateCandidates(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) ResetCounter(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.ResetCounter(r.Context()); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]string{"status": "success", "message": "counter reset"}, http.StatusOK)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.Controller.Dashboard(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) Dividends(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.Controller.Dividends(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) Candidates(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.Controller.Candidates(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, response, http.StatusOK)
}
