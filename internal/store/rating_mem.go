package store

import (
	"context"
	"math"
	"slices"
	"sync"

	"bookclub/internal/entity"
	"bookclub/internal/usecase"
)

// Ledger is the in-memory rating collection. Entries are created and
// deleted only through Library, together with their catalog record.
type Ledger struct {
	mu      sync.RWMutex
	entries []entity.Rating
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Get(ctx context.Context, id string) (entity.Rating, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexLocked(id)
	if i < 0 {
		return entity.Rating{}, usecase.ErrNotFound
	}
	return copyRating(l.entries[i]), nil
}

func (l *Ledger) ListAll(ctx context.Context) ([]entity.Rating, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entity.Rating, len(l.entries))
	for i, e := range l.entries {
		out[i] = copyRating(e)
	}
	return out, nil
}

// Append records a value and recomputes the running average, rounded to two
// decimal places. It returns the new average.
func (l *Ledger) Append(ctx context.Context, id string, value int) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return 0, usecase.ErrNotFound
	}
	if value < 1 || value > 5 {
		return 0, usecase.ErrInvalidValue
	}

	e := &l.entries[i]
	e.Values = append(e.Values, value)
	sum := 0
	for _, v := range e.Values {
		sum += v
	}
	e.Average = round2(float64(sum) / float64(len(e.Values)))
	return e.Average, nil
}

func (l *Ledger) indexLocked(id string) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func copyRating(e entity.Rating) entity.Rating {
	e.Values = slices.Clone(e.Values)
	return e
}
