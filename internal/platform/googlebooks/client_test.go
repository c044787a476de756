package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupISBN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "isbn:9780140449136", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{"volumeInfo": {
				"title": "The Republic",
				"authors": ["Plato"],
				"publisher": "Penguin",
				"publishedDate": "2007-09-06"
			}}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, 0)
	vol, err := client.LookupISBN(context.Background(), "9780140449136")
	require.NoError(t, err)
	assert.Equal(t, []string{"Plato"}, vol.Authors)
	assert.Equal(t, "Penguin", vol.Publisher)
	assert.Equal(t, "2007-09-06", vol.PublishedDate)
}

func TestLookupISBN_NoVolume(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, 0)
	_, err := client.LookupISBN(context.Background(), "9780140449136")
	assert.ErrorIs(t, err, ErrNoVolume)
}

func TestLookupISBN_RetriesOn5xx(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "X"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, 1)
	vol, err := client.LookupISBN(context.Background(), "9780140449136")
	require.NoError(t, err)
	assert.Equal(t, "X", vol.Title)
	assert.Equal(t, 2, attempts)
}

func TestLookupISBN_ClientErrorDoesNotRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, 3)
	_, err := client.LookupISBN(context.Background(), "9780140449136")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
