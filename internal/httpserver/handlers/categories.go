package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/httpserver/deps"
)

// SaveCategory creates a category from a JSON body.
func SaveCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
			Icon string `json:"icon"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, d, &domain.ParseError{Err: err})
			return
		}

		cat, err := d.Mutations.SaveCategory(r.Context(), body.Name, body.Icon)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, cat)
	}
}

// DeleteCategory removes the category record only; items keep their tags
// and surface as Uncategorized from then on. Confirmation is the caller's
// concern.
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Mutations.DeleteCategory(r.Context(), id); err != nil {
			writeError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
