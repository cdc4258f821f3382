package flashpoint

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat/message", h.HandleMessage)
	r.Get("/chat/state", h.HandleState)
	r.Post("/chat/reset", h.HandleReset)
}
