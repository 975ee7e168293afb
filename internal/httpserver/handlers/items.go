package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/mutate"
	"github.com/linknest/linknest/internal/utils"
	"github.com/linknest/linknest/internal/view"
)

// maxUploadBytes caps a single file upload (32 MiB).
const maxUploadBytes = 32 << 20

// ListItems returns the rendered view for the current parameters.
func ListItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.Render(d.State.Snapshot()))
	}
}

// SaveItem creates an item (POST) or updates one in place (PUT with id).
// Accepts a multipart form with an optional file attachment, or plain JSON
// when there is nothing to upload.
func SaveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editID := chi.URLParam(r, "id")

		input, err := decodeItemInput(r)
		if err != nil {
			writeError(w, d, err)
			return
		}

		item, err := d.Mutations.SaveItem(r.Context(), input, editID)
		if err != nil {
			writeError(w, d, err)
			return
		}

		status := http.StatusCreated
		if editID != "" {
			status = http.StatusOK
		}
		writeJSON(w, status, item)
	}
}

func decodeItemInput(r *http.Request) (mutate.ItemInput, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		return decodeMultipartItem(r)
	}

	var body struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return mutate.ItemInput{}, &domain.ParseError{Err: err}
	}
	return mutate.ItemInput{
		Title:    body.Title,
		URL:      body.URL,
		Category: body.Category,
	}, nil
}

func decodeMultipartItem(r *http.Request) (mutate.ItemInput, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return mutate.ItemInput{}, &domain.ParseError{Err: err}
	}

	input := mutate.ItemInput{
		Title:    r.FormValue("title"),
		URL:      r.FormValue("url"),
		Category: r.FormValue("category"),
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return input, nil
	}
	if err != nil {
		return mutate.ItemInput{}, &domain.ParseError{Err: err}
	}
	defer utils.Close(file)

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return mutate.ItemInput{}, &domain.ParseError{Err: err}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	input.File = &domain.FileUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	}
	return input, nil
}

// DeleteItem removes an item and its blob. Deleting an unknown id is a
// no-op and still answers 204.
func DeleteItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Mutations.DeleteItem(r.Context(), id); err != nil {
			writeError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ReorderItems swaps the sort keys of two items (drag-and-drop backend).
func ReorderItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Src    string `json:"src"`
			Target string `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, d, &domain.ParseError{Err: err})
			return
		}
		if err := d.Mutations.ReorderSwap(r.Context(), body.Src, body.Target); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, view.Render(d.State.Snapshot()))
	}
}

// GetFile streams the stored blob for an item, with the MIME type recorded
// on the item record.
func GetFile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		blob, found, err := d.Store.GetFile(r.Context(), id)
		if err != nil {
			writeError(w, d, err)
			return
		}
		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no file stored for item"})
			return
		}

		contentType := "application/octet-stream"
		if item, ok := d.State.Item(id); ok && item.FileType != "" {
			contentType = item.FileType
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(blob)
	}
}
