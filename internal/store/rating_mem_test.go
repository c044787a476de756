package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub/internal/usecase"
)

func TestLedgerAppend_AverageInvariant(t *testing.T) {
	_, ledger, _ := seededLibrary(t)
	ctx := context.Background()

	tests := []struct {
		value   int
		wantAvg float64
	}{
		{5, 5},
		{4, 4.5},
		{4, 4.33},
		{2, 3.75},
		{1, 3.2},
	}
	for _, tt := range tests {
		avg, err := ledger.Append(ctx, "id-1", tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.wantAvg, avg)
	}

	entry, err := ledger.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 4, 2, 1}, entry.Values)
	assert.Equal(t, 3.2, entry.Average)
}

func TestLedgerAppend_RoundsToTwoDecimals(t *testing.T) {
	_, ledger, _ := seededLibrary(t)
	ctx := context.Background()

	// 1+5+5 = 11/3 = 3.666... -> 3.67
	for _, v := range []int{1, 5} {
		_, err := ledger.Append(ctx, "id-2", v)
		require.NoError(t, err)
	}
	avg, err := ledger.Append(ctx, "id-2", 5)
	require.NoError(t, err)
	assert.Equal(t, 3.67, avg)
}

func TestLedgerAppend_Errors(t *testing.T) {
	_, ledger, _ := seededLibrary(t)
	ctx := context.Background()

	_, err := ledger.Append(ctx, "unknown", 3)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	for _, v := range []int{0, 6, -1, 100} {
		_, err := ledger.Append(ctx, "id-1", v)
		assert.ErrorIs(t, err, usecase.ErrInvalidValue, "value %d", v)
	}

	// Rejected values leave the history untouched.
	entry, err := ledger.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Empty(t, entry.Values)
	assert.Zero(t, entry.Average)
}

func TestLedgerGet_ReturnsCopy(t *testing.T) {
	_, ledger, _ := seededLibrary(t)
	ctx := context.Background()

	_, err := ledger.Append(ctx, "id-1", 4)
	require.NoError(t, err)

	entry, err := ledger.Get(ctx, "id-1")
	require.NoError(t, err)
	entry.Values[0] = 1

	again, err := ledger.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, again.Values)
}

func TestLedgerListAll(t *testing.T) {
	_, ledger, _ := seededLibrary(t)

	entries, err := ledger.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Republic", entries[0].Title)
	assert.Empty(t, entries[0].Values)
}
