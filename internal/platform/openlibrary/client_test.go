package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "isbn:9780140449136", r.URL.Query().Get("q"))
		assert.Equal(t, "bookclub-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"numFound": 1,
			"docs": [{"key": "/works/OL1", "title": "The Republic", "language": ["eng", "gre"]}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bookclub-test", 100, 0)
	codes, err := client.Languages(context.Background(), "9780140449136")
	require.NoError(t, err)
	assert.Equal(t, []string{"eng", "gre"}, codes)
}

func TestLanguages_NoDocs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bookclub-test", 100, 0)
	_, err := client.Languages(context.Background(), "9780140449136")
	assert.ErrorIs(t, err, ErrNoDocs)
}

func TestLanguages_DocWithoutLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"key": "/works/OL1"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bookclub-test", 100, 0)
	_, err := client.Languages(context.Background(), "9780140449136")
	assert.ErrorIs(t, err, ErrNoDocs)
}
