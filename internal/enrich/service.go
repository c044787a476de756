package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bookclub/internal/platform/googlebooks"
	"bookclub/internal/validation"
)

// BibliographicClient looks a volume up by ISBN (Google Books).
type BibliographicClient interface {
	LookupISBN(ctx context.Context, isbn string) (*googlebooks.VolumeInfo, error)
}

// LanguageClient returns the language codes recorded for an ISBN
// (Open Library).
type LanguageClient interface {
	Languages(ctx context.Context, isbn string) ([]string, error)
}

// SummaryClient produces a short generated summary (Gemini).
type SummaryClient interface {
	GenerateSummary(ctx context.Context, title, authors string) (string, error)
}

// Service queries the three providers in a fixed order and normalizes their
// responses into a Metadata fragment. The first failure aborts the
// remaining steps; no partial fragment is ever returned.
type Service struct {
	books     BibliographicClient
	languages LanguageClient
	summaries SummaryClient
	timeout   time.Duration
	logger    zerolog.Logger

	cbVolumes   *breaker[*googlebooks.VolumeInfo]
	cbLanguages *breaker[[]string]
	cbSummaries *breaker[string]
}

func NewService(books BibliographicClient, languages LanguageClient, summaries SummaryClient, timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		books:       books,
		languages:   languages,
		summaries:   summaries,
		timeout:     timeout,
		logger:      logger,
		cbVolumes:   newBreaker[*googlebooks.VolumeInfo]("google-books", logger),
		cbLanguages: newBreaker[[]string]("open-library", logger),
		cbSummaries: newBreaker[string]("gemini", logger),
	}
}

// Enrich runs the provider pipeline for one ISBN. Callers must not hold any
// store lock while this is in flight; each provider call gets its own
// timeout derived from ctx.
func (s *Service) Enrich(ctx context.Context, isbn, title string) (Metadata, error) {
	vol, err := s.lookupVolume(ctx, isbn)
	if err != nil {
		return Metadata{}, s.fail(ProviderGoogleBooks, err)
	}

	authors := validation.Missing
	if len(vol.Authors) > 0 {
		authors = strings.Join(vol.Authors, " and ")
	}
	publisher := vol.Publisher
	if validation.IsBlank(publisher) {
		publisher = validation.Missing
	}

	language, err := s.lookupLanguages(ctx, isbn)
	if err != nil {
		return Metadata{}, s.fail(ProviderOpenLibrary, err)
	}

	summary, err := s.generateSummary(ctx, title, authors)
	if err != nil {
		return Metadata{}, s.fail(ProviderGemini, err)
	}

	return Metadata{
		Authors:       authors,
		Publisher:     publisher,
		PublishedDate: validation.NormalizeDate(vol.PublishedDate),
		Language:      language,
		Summary:       summary,
	}, nil
}

func (s *Service) lookupVolume(ctx context.Context, isbn string) (*googlebooks.VolumeInfo, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.cbVolumes.execute(func() (*googlebooks.VolumeInfo, error) {
		return s.books.LookupISBN(cctx, isbn)
	})
}

func (s *Service) lookupLanguages(ctx context.Context, isbn string) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.cbLanguages.execute(func() ([]string, error) {
		return s.languages.Languages(cctx, isbn)
	})
}

func (s *Service) generateSummary(ctx context.Context, title, authors string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.cbSummaries.execute(func() (string, error) {
		return s.summaries.GenerateSummary(cctx, title, authors)
	})
}

func (s *Service) fail(provider string, err error) error {
	s.logger.Error().Err(err).Str("provider", provider).Msg("enrichment failed")
	return &UpstreamError{Provider: provider, Err: err}
}
