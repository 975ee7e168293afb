package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/httpserver/handlers"
)

func init() { Register(registerView) }

func registerView(r chi.Router, d deps.Deps) {
	r.Post("/api/view", handlers.UpdateView(d))
	r.Post("/api/refresh", handlers.Refresh(d))
	r.Get("/api/prefs/theme", handlers.GetTheme(d))
	r.Put("/api/prefs/theme", handlers.SetTheme(d))
}
