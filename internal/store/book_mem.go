package store

import (
	"context"
	"slices"
	"sync"

	"bookclub/internal/entity"
	"bookclub/internal/usecase"
)

// Catalog is the in-memory book collection, kept in insertion order.
// Record counts are small, so lookups scan the slice; a coarse RWMutex
// guards the whole collection.
type Catalog struct {
	mu    sync.RWMutex
	books []entity.Book
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// List applies the query filters. The language filter selects records whose
// Language list contains the value; all other filters must match exactly,
// together. When both families are present the result is their union, not
// their intersection. That mirrors the documented endpoint behavior and is
// flagged as a candidate inconsistency; confirm with product before leaning
// on it. Summary is not filterable.
func (c *Catalog) List(ctx context.Context, filters map[string]string) ([]entity.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lang, hasLang := filters["language"]
	fields := make(map[string]string, len(filters))
	for k, v := range filters {
		if k == "language" || k == "summary" {
			continue
		}
		fields[k] = v
	}

	if !hasLang && len(fields) == 0 {
		out := make([]entity.Book, len(c.books))
		for i, b := range c.books {
			out[i] = copyBook(b)
		}
		return out, nil
	}

	out := []entity.Book{}
	seen := make(map[string]bool)
	if hasLang {
		for _, b := range c.books {
			if slices.Contains(b.Language, lang) {
				out = append(out, copyBook(b))
				seen[b.ID] = true
			}
		}
	}
	if len(fields) > 0 {
		for _, b := range c.books {
			if seen[b.ID] || !matchesFields(b, fields) {
				continue
			}
			out = append(out, copyBook(b))
		}
	}
	return out, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (entity.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexLocked(id)
	if i < 0 {
		return entity.Book{}, usecase.ErrNotFound
	}
	return copyBook(c.books[i]), nil
}

func (c *Catalog) ExistsISBN(ctx context.Context, isbn string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.existsISBNLocked(isbn), nil
}

func (c *Catalog) indexLocked(id string) int {
	for i := range c.books {
		if c.books[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) existsISBNLocked(isbn string) bool {
	for i := range c.books {
		if c.books[i].ISBN == isbn {
			return true
		}
	}
	return false
}

func matchesFields(b entity.Book, fields map[string]string) bool {
	for key, want := range fields {
		got, ok := fieldValue(b, key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func fieldValue(b entity.Book, key string) (string, bool) {
	switch key {
	case "id":
		return b.ID, true
	case "title":
		return b.Title, true
	case "ISBN":
		return b.ISBN, true
	case "genre":
		return b.Genre, true
	case "authors":
		return b.Authors, true
	case "publisher":
		return b.Publisher, true
	case "publishedDate":
		return b.PublishedDate, true
	default:
		return "", false
	}
}

func copyBook(b entity.Book) entity.Book {
	b.Language = slices.Clone(b.Language)
	return b
}
