package handlers

import (
	"io"
	"net/http"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/portable"
)

// maxImportBytes caps an import payload (16 MiB of JSON is plenty).
const maxImportBytes = 16 << 20

// Export returns the portable backup document.
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="linknest_backup.json"`)
		writeJSON(w, http.StatusOK, d.Portable.Export())
	}
}

// Import merges or replaces local state from a posted document. The mode
// query parameter selects the behavior and defaults to merge.
func Import(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := portable.Mode(r.URL.Query().Get("mode"))
		switch mode {
		case "":
			mode = portable.ModeMerge
		case portable.ModeMerge, portable.ModeReplace:
		default:
			writeError(w, d, domain.Validationf("unknown import mode %q", mode))
			return
		}

		data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			writeError(w, d, &domain.ParseError{Err: err})
			return
		}

		stats, err := d.Portable.Import(r.Context(), data, mode)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
