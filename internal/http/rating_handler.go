package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookclub/internal/usecase"
)

type RatingHandler struct {
	svc usecase.RatingsService
}

func NewRatingHandler(svc usecase.RatingsService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// List handles GET /ratings. With an id query parameter it returns that
// entry's submitted values; without one it returns the full collection.
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		h.writeValues(w, r, id)
		return
	}

	entries, err := h.svc.ListRatings(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Get handles GET /ratings/{id}.
func (h *RatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeValues(w, r, r.PathValue("id"))
}

func (h *RatingHandler) writeValues(w http.ResponseWriter, r *http.Request, id string) {
	entry, err := h.svc.GetRating(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgRatingNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]int{"Ratings": entry.Values})
}

type appendValueRequest struct {
	Value *int `json:"value"`
}

// AppendValue handles POST /ratings/{id}/values: records one value and
// returns the recomputed average.
func (h *RatingHandler) AppendValue(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		writeMediaTypeError(w)
		return
	}
	id := r.PathValue("id")

	var req appendValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}

	// Existence is reported before a missing value field.
	if _, err := h.svc.GetRating(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgRatingNotFound)
			return
		}
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	if req.Value == nil {
		writeMessage(w, http.StatusUnprocessableEntity, msgMissingValue)
		return
	}

	avg, err := h.svc.AppendRating(r.Context(), id, *req.Value)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidValue):
			writeMessage(w, http.StatusUnprocessableEntity, msgBadValue)
		case errors.Is(err, usecase.ErrNotFound):
			writeMessage(w, http.StatusNotFound, msgRatingNotFound)
		default:
			writeMessage(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]float64{"Current average": avg})
}
