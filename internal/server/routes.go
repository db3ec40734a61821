package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gift_bot/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// admin zone
			r.Use(bearerAuth(s.adminToken))

			r.Route("/catalog", func(r chi.Router) {
				r.Post("/import", handler(s.postV1CatalogImport))
				r.Get("/stats", handler(s.getV1CatalogStats))
			})
			r.Get("/gifts/{id}", handler(s.getV1Gift))
			r.Get("/users/{id}/selections", handler(s.getV1UserSelections))
			r.Post("/match", handler(s.postV1Match))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, httpError(err))
		}
	}
}
