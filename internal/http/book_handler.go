package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bookclub/internal/enrich"
	"bookclub/internal/entity"
	"bookclub/internal/usecase"
)

type BookHandler struct {
	svc usecase.CatalogService
}

func NewBookHandler(svc usecase.CatalogService) *BookHandler {
	return &BookHandler{svc: svc}
}

// List handles GET /books. Query parameters are field filters; the
// language parameter matches membership in the record's language list.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	books, err := h.svc.List(r.Context(), filters)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Create handles POST /books: validate, enrich, commit book + rating
// history, return the generated identifier.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		writeMediaTypeError(w)
		return
	}

	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	if msg, bad := payloadError(req); bad {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	id, err := h.svc.Create(r.Context(), *req.Title, *req.ISBN, *req.Genre)
	if err != nil {
		var upstream *enrich.UpstreamError
		switch {
		case errors.Is(err, usecase.ErrDuplicateISBN):
			writeMessage(w, http.StatusUnprocessableEntity, msgDuplicateISBN)
		case errors.As(err, &upstream):
			writeMessage(w, http.StatusInternalServerError,
				fmt.Sprintf("Error fetching book data from %s: %v", upstream.Provider, upstream.Err))
		default:
			writeMessage(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, id)
}

// Get handles GET /books/{id}; the body is a single-element array.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, []entity.Book{book})
}

// Replace handles PUT /books/{id}. The full field set must be present and
// non-blank (language may be any non-empty list); every field except the
// identifier is overwritten.
func (h *BookHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := h.svc.Get(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if !isJSONRequest(r) {
		writeMediaTypeError(w)
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	if msg, bad := payloadError(req); bad {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}

	b := entity.Book{
		Title:         *req.Title,
		ISBN:          *req.ISBN,
		Genre:         *req.Genre,
		Authors:       *req.Authors,
		Publisher:     *req.Publisher,
		PublishedDate: *req.PublishedDate,
		Language:      *req.Language,
		Summary:       *req.Summary,
	}
	if err := h.svc.Replace(r.Context(), id, b); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// Delete handles DELETE /books/{id}; the rating history goes with it.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, id)
}
