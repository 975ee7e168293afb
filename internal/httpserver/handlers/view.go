package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/view"
)

// UpdateView applies partial changes to the view parameters and responds
// with the re-rendered view. Changing the filter or the search text resets
// pagination to the first page.
func UpdateView(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Filter *string `json:"filter"`
			Search *string `json:"search"`
			Page   *int    `json:"page"`
			View   *string `json:"view"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, d, &domain.ParseError{Err: err})
			return
		}

		if body.Filter != nil {
			d.State.SetFilter(*body.Filter)
		}
		if body.Search != nil {
			d.State.SetSearch(*body.Search)
		}
		if body.Page != nil {
			d.State.SetPage(*body.Page)
		}
		if body.View != nil {
			d.State.SetView(*body.View)
		}

		writeJSON(w, http.StatusOK, view.Render(d.State.Snapshot()))
	}
}

// Refresh forces a full reload of the state cache from storage.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.State.Refresh(r.Context()); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, view.Render(d.State.Snapshot()))
	}
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// GetTheme returns the saved theme preference.
func GetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, themeResponse{Theme: d.Prefs.Theme()})
	}
}

// SetTheme saves the theme preference.
func SetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body themeResponse
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, d, &domain.ParseError{Err: err})
			return
		}
		if err := d.Prefs.SetTheme(body.Theme); err != nil {
			writeError(w, d, domain.Validationf("%v", err))
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: body.Theme})
	}
}
