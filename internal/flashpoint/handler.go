package flashpoint

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleMessage — one user turn in, full updated view state out. The browser
// redraws from the response; there is no separate notification channel.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	state := h.svc.HandleMessage(r.Context(), payload.Text)
	writeJSON(w, state)
}

func (h *Handler) HandleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.svc.State())
}

func (h *Handler) HandleReset(w http.ResponseWriter, _ *http.Request) {
	h.svc.Reset()
	writeJSON(w, h.svc.State())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode error: %v", err)
	}
}
