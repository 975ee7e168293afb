package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/httpserver/handlers"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	r.Post("/api/categories", handlers.SaveCategory(d))
	r.Delete("/api/categories/{id}", handlers.DeleteCategory(d))
}
