package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub/internal/entity"
	"bookclub/internal/testutil"
	"bookclub/internal/usecase"
)

type stubRatings struct {
	getFn    func(ctx context.Context, id string) (entity.Rating, error)
	listFn   func(ctx context.Context) ([]entity.Rating, error)
	appendFn func(ctx context.Context, id string, value int) (float64, error)
	topFn    func(ctx context.Context) ([]entity.TopBook, error)
}

func (s *stubRatings) GetRating(ctx context.Context, id string) (entity.Rating, error) {
	return s.getFn(ctx, id)
}

func (s *stubRatings) ListRatings(ctx context.Context) ([]entity.Rating, error) {
	return s.listFn(ctx)
}

func (s *stubRatings) AppendRating(ctx context.Context, id string, value int) (float64, error) {
	return s.appendFn(ctx, id, value)
}

func (s *stubRatings) TopBooks(ctx context.Context) ([]entity.TopBook, error) {
	return s.topFn(ctx)
}

func knownRatings(entry entity.Rating) *stubRatings {
	return &stubRatings{
		getFn: func(ctx context.Context, id string) (entity.Rating, error) {
			if id == entry.ID {
				return entry, nil
			}
			return entity.Rating{}, usecase.ErrNotFound
		},
		listFn: func(ctx context.Context) ([]entity.Rating, error) {
			return []entity.Rating{entry}, nil
		},
		appendFn: func(ctx context.Context, id string, value int) (float64, error) {
			if id != entry.ID {
				return 0, usecase.ErrNotFound
			}
			if value < 1 || value > 5 {
				return 0, usecase.ErrInvalidValue
			}
			return 4.5, nil
		},
	}
}

func TestRatingHandler_List(t *testing.T) {
	entry := entity.Rating{ID: "id-1", Title: "Republic", Values: []int{5, 4}, Average: 4.5}
	handler := NewRatingHandler(knownRatings(entry))

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/ratings", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)

	var entries []entity.Rating
	require.NoError(t, json.Unmarshal(resp.Raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 4.5, entries[0].Average)
}

func TestRatingHandler_ListWithID(t *testing.T) {
	entry := entity.Rating{ID: "id-1", Title: "Republic", Values: []int{5, 4}, Average: 4.5}
	handler := NewRatingHandler(knownRatings(entry))

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/ratings?id=id-1", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []interface{}{float64(5), float64(4)}, resp.Body["Ratings"])

	w = httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/ratings?id=unknown", nil))

	resp = testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, msgRatingNotFound, resp.Body["message"])
}

func TestRatingHandler_Get(t *testing.T) {
	entry := entity.Rating{ID: "id-1", Title: "Republic", Values: []int{3}, Average: 3}
	handler := NewRatingHandler(knownRatings(entry))

	r := testutil.NewRequest(http.MethodGet, "/ratings/id-1", nil)
	r.SetPathValue("id", "id-1")
	w := httptest.NewRecorder()
	handler.Get(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []interface{}{float64(3)}, resp.Body["Ratings"])

	r = testutil.NewRequest(http.MethodGet, "/ratings/unknown", nil)
	r.SetPathValue("id", "unknown")
	w = httptest.NewRecorder()
	handler.Get(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRatingHandler_AppendValue(t *testing.T) {
	entry := entity.Rating{ID: "id-1", Title: "Republic", Values: []int{5, 4}, Average: 4.5}

	tests := []struct {
		name           string
		path           string
		id             string
		body           interface{}
		contentType    string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "created",
			id:             "id-1",
			body:           map[string]int{"value": 4},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "non-JSON content type",
			id:             "id-1",
			body:           map[string]int{"value": 4},
			contentType:    "application/xml",
			expectedStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:           "unknown id",
			id:             "unknown",
			body:           map[string]int{"value": 4},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    msgRatingNotFound,
		},
		{
			name:           "missing value field",
			id:             "id-1",
			body:           map[string]string{"star": "4"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    msgMissingValue,
		},
		{
			name:           "value out of range",
			id:             "id-1",
			body:           map[string]int{"value": 6},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    msgBadValue,
		},
		{
			name:           "value zero",
			id:             "id-1",
			body:           map[string]int{"value": 0},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    msgBadValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRatingHandler(knownRatings(entry))

			r := testutil.NewRequest(http.MethodPost, "/ratings/"+tt.id+"/values", tt.body)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			r.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			handler.AppendValue(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Body["message"])
			}
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, 4.5, resp.Body["Current average"])
			}
		})
	}
}
