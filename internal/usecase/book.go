package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookclub/internal/entity"
	"bookclub/internal/leaderboard"
	"bookclub/internal/validation"
)

// Service orchestrates the catalog, the rating ledger and the enrichment
// pipeline. Handlers validate payload shape; Service owns the ordering
// rules around enrichment and the linked commits.
type Service struct {
	books    BookRepository
	ratings  RatingRepository
	library  LibraryRepository
	enricher Enricher
}

func NewService(books BookRepository, ratings RatingRepository, library LibraryRepository, enricher Enricher) *Service {
	return &Service{
		books:    books,
		ratings:  ratings,
		library:  library,
		enricher: enricher,
	}
}

func (s *Service) List(ctx context.Context, filters map[string]string) ([]entity.Book, error) {
	return s.books.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id string) (entity.Book, error) {
	return s.books.Get(ctx, id)
}

// Create checks ISBN uniqueness, runs the enrichment pipeline, and commits
// the book together with its empty rating history. Enrichment runs without
// holding any store lock; on any provider failure nothing is committed.
func (s *Service) Create(ctx context.Context, title, isbn, genre string) (string, error) {
	exists, err := s.books.ExistsISBN(ctx, isbn)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateISBN
	}

	meta, err := s.enricher.Enrich(ctx, isbn, title)
	if err != nil {
		return "", err
	}

	b := entity.Book{
		ID:            uuid.NewString(),
		Title:         title,
		ISBN:          isbn,
		Genre:         genre,
		Authors:       meta.Authors,
		Publisher:     meta.Publisher,
		PublishedDate: meta.PublishedDate,
		Language:      meta.Language,
		Summary:       meta.Summary,
	}
	if err := s.library.CreateBook(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// Replace overwrites every field of an existing record. The identifier is
// immutable; the published date is re-normalized on the way in.
func (s *Service) Replace(ctx context.Context, id string, b entity.Book) error {
	b.PublishedDate = validation.NormalizeDate(b.PublishedDate)
	return s.library.ReplaceBook(ctx, id, b)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.library.DeleteBook(ctx, id)
}

func (s *Service) GetRating(ctx context.Context, id string) (entity.Rating, error) {
	return s.ratings.Get(ctx, id)
}

func (s *Service) ListRatings(ctx context.Context) ([]entity.Rating, error) {
	return s.ratings.ListAll(ctx)
}

func (s *Service) AppendRating(ctx context.Context, id string, value int) (float64, error) {
	return s.ratings.Append(ctx, id, value)
}

// TopBooks recomputes the leaderboard from the full ledger on every call;
// no incremental index is maintained.
func (s *Service) TopBooks(ctx context.Context) ([]entity.TopBook, error) {
	entries, err := s.ratings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.ComputeTop(entries), nil
}
