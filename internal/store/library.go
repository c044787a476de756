package store

import (
	"context"

	"bookclub/internal/entity"
	"bookclub/internal/usecase"
)

// Library owns the mutations that span both collections. Every method
// takes the catalog lock and then the ledger lock, in that order, so a
// book and its rating entry commit or disappear as one critical section.
type Library struct {
	catalog *Catalog
	ledger  *Ledger
}

func NewLibrary(catalog *Catalog, ledger *Ledger) *Library {
	return &Library{catalog: catalog, ledger: ledger}
}

// CreateBook appends the book and an empty rating history under the same
// identifier. ISBN uniqueness is re-checked here: the caller's early check
// runs lock-free before enrichment, so two concurrent creates of the same
// ISBN can both reach this point.
func (lib *Library) CreateBook(ctx context.Context, b entity.Book) error {
	lib.catalog.mu.Lock()
	defer lib.catalog.mu.Unlock()
	lib.ledger.mu.Lock()
	defer lib.ledger.mu.Unlock()

	if lib.catalog.existsISBNLocked(b.ISBN) {
		return usecase.ErrDuplicateISBN
	}
	lib.catalog.books = append(lib.catalog.books, copyBook(b))
	lib.ledger.entries = append(lib.ledger.entries, entity.Rating{
		ID:     b.ID,
		Title:  b.Title,
		Values: []int{},
	})
	return nil
}

// ReplaceBook overwrites every field of the record except the identifier
// and keeps the ledger's denormalized title in sync. Note that ISBN
// uniqueness is not re-checked on update; that matches the documented
// endpoint contract and is flagged as a gap.
func (lib *Library) ReplaceBook(ctx context.Context, id string, b entity.Book) error {
	lib.catalog.mu.Lock()
	defer lib.catalog.mu.Unlock()
	lib.ledger.mu.Lock()
	defer lib.ledger.mu.Unlock()

	i := lib.catalog.indexLocked(id)
	if i < 0 {
		return usecase.ErrNotFound
	}
	b.ID = id
	lib.catalog.books[i] = copyBook(b)

	if j := lib.ledger.indexLocked(id); j >= 0 {
		lib.ledger.entries[j].Title = b.Title
	}
	return nil
}

// DeleteBook removes the record and its rating history together.
func (lib *Library) DeleteBook(ctx context.Context, id string) error {
	lib.catalog.mu.Lock()
	defer lib.catalog.mu.Unlock()
	lib.ledger.mu.Lock()
	defer lib.ledger.mu.Unlock()

	i := lib.catalog.indexLocked(id)
	if i < 0 {
		return usecase.ErrNotFound
	}
	lib.catalog.books = append(lib.catalog.books[:i], lib.catalog.books[i+1:]...)

	if j := lib.ledger.indexLocked(id); j >= 0 {
		lib.ledger.entries = append(lib.ledger.entries[:j], lib.ledger.entries[j+1:]...)
	}
	return nil
}
