package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// user surface: bearer session required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/cards", h.tokenizeCard)
	})

	// machine-to-machine surface: credential checked inside the handler so
	// the rejection payload matches the relay's structured error format
	router.Group(func(r chi.Router) {
		r.Post("/api/relay", h.relay)
	})

	return router
}
