package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/pkg/apperror"
)

// CreateDemoRequest handles POST /api/demo-requests
func (h *Handler) CreateDemoRequest(w http.ResponseWriter, r *http.Request) {
	var req leads.DemoRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.leads.SubmitDemoRequest(r.Context(), req)
	if err != nil {
		apperror.WriteJSON(w, r, h.log, leads.ToAppError(err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// CreateContactMessage handles POST /api/contact
func (h *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var msg leads.ContactMessage
	if !h.decodeJSON(w, r, &msg) {
		return
	}

	res, err := h.leads.SubmitContactForm(r.Context(), msg)
	if err != nil {
		apperror.WriteJSON(w, r, h.log, leads.ToAppError(err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Request body must be a JSON object").WithInternal(err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
