package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/httpserver/handlers"
)

func init() { Register(registerItems) }

func registerItems(r chi.Router, d deps.Deps) {
	r.Get("/api/items", handlers.ListItems(d))
	r.Post("/api/items", handlers.SaveItem(d))
	r.Put("/api/items/{id}", handlers.SaveItem(d))
	r.Delete("/api/items/{id}", handlers.DeleteItem(d))
	r.Post("/api/items/reorder", handlers.ReorderItems(d))
	r.Get("/api/files/{id}", handlers.GetFile(d))
}
