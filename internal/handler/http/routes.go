package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// api
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/cards", h.serve(h.gateway.CreateCard))
		r.Put("/cards", h.serve(h.gateway.UpdateCard))
		r.Get("/cards", h.serve(h.gateway.GetCard))
		r.Delete("/cards", h.serve(h.gateway.DeleteCard))

		r.Post("/users", h.serve(h.gateway.CreateUser))
		r.Post("/login", h.serve(h.gateway.Login))
	})

	// service endpoints
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())

	if h.media != nil {
		router.Get("/media/{key}", h.getMedia)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
