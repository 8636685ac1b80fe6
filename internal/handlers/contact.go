package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mahrous.dev/internal/services"
)

// ContactHandler handles the contact-form endpoint
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// Preflight handles OPTIONS /api/contact.
func (h *ContactHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Max-Age", "86400")
	w.WriteHeader(http.StatusNoContent)
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r)

	var form services.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.contactService.Send(r.Context(), form)
	if err != nil {
		h.respondSendError(w, err)
		return
	}

	if result.DryRun {
		respondJSON(w, http.StatusOK, map[string]any{"ok": true, "dryRun": true})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": orNil(result.ID)})
}

func (h *ContactHandler) respondSendError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	var configErr *services.ConfigError
	if errors.As(err, &configErr) {
		respondError(w, http.StatusInternalServerError, configErr.Message)
		return
	}

	var providerErr *services.ProviderError
	if errors.As(err, &providerErr) {
		status := providerErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		respondJSON(w, status, map[string]any{
			"error": providerErr.Message,
			"code":  providerErr.Code,
		})
		return
	}

	respondError(w, http.StatusBadGateway, "Failed to send message")
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Add("Vary", "Origin")
}

// orNil renders an absent provider id as JSON null rather than "".
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
