package usecase

import (
	"context"

	"bookclub/internal/enrich"
	"bookclub/internal/entity"
)

// BookRepository reads the catalog collection.
type BookRepository interface {
	// List returns books matching the given field filters, in insertion
	// order. An empty filter map returns every book.
	List(ctx context.Context, filters map[string]string) ([]entity.Book, error)
	Get(ctx context.Context, id string) (entity.Book, error)
	ExistsISBN(ctx context.Context, isbn string) (bool, error)
}

// RatingRepository reads and appends to the rating ledger.
type RatingRepository interface {
	Get(ctx context.Context, id string) (entity.Rating, error)
	ListAll(ctx context.Context) ([]entity.Rating, error)
	// Append records a value for the book and returns the new average.
	Append(ctx context.Context, id string, value int) (float64, error)
}

// LibraryRepository performs the mutations that touch both collections.
// Implementations must commit each operation as a single critical section:
// a book and its rating entry are never observable one without the other.
type LibraryRepository interface {
	CreateBook(ctx context.Context, b entity.Book) error
	ReplaceBook(ctx context.Context, id string, b entity.Book) error
	DeleteBook(ctx context.Context, id string) error
}

// Enricher fetches provider metadata for a new book. Failures are
// *enrich.UpstreamError values naming the provider.
type Enricher interface {
	Enrich(ctx context.Context, isbn, title string) (enrich.Metadata, error)
}

// CatalogService is the book surface consumed by the HTTP handlers.
type CatalogService interface {
	List(ctx context.Context, filters map[string]string) ([]entity.Book, error)
	Get(ctx context.Context, id string) (entity.Book, error)
	Create(ctx context.Context, title, isbn, genre string) (string, error)
	Replace(ctx context.Context, id string, b entity.Book) error
	Delete(ctx context.Context, id string) error
}

// RatingsService is the rating and leaderboard surface consumed by the
// HTTP handlers.
type RatingsService interface {
	GetRating(ctx context.Context, id string) (entity.Rating, error)
	ListRatings(ctx context.Context) ([]entity.Rating, error)
	AppendRating(ctx context.Context, id string, value int) (float64, error)
	TopBooks(ctx context.Context) ([]entity.TopBook, error)
}
