package enrich

import (
	"fmt"
)

// Provider names as they appear in error responses.
const (
	ProviderGoogleBooks = "Google Books API"
	ProviderOpenLibrary = "Open Library"
	ProviderGemini      = "Gemini"
)

// Metadata is the record fragment assembled from the three providers.
type Metadata struct {
	Authors       string
	Publisher     string
	PublishedDate string
	Language      []string
	Summary       string
}

// UpstreamError reports which provider failed and carries the raw detail.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fetching book data from %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
