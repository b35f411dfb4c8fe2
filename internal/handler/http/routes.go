package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/params", h.getParams)
	router.Get("/api/version/", h.getServerVersion)

	// every other path is the error page
	router.Get("/*", h.renderPage)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
