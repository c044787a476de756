package leaderboard

import (
	"sort"

	"bookclub/internal/entity"
)

// minValues is the eligibility floor: a book needs at least this many
// submitted ratings to be ranked.
const minValues = 3

// ComputeTop ranks the eligible rating entries by average, largest first.
// It takes the first three (or fewer) and then admits every later entry
// whose average exactly equals the third-ranked one, so ties at the cutoff
// are included rather than dropped. Entries with equal averages are ordered
// by identifier ascending to keep the output reproducible.
func ComputeTop(entries []entity.Rating) []entity.TopBook {
	eligible := make([]entity.Rating, 0, len(entries))
	for _, e := range entries {
		if len(e.Values) >= minValues {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		return []entity.TopBook{}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Average != eligible[j].Average {
			return eligible[i].Average > eligible[j].Average
		}
		return eligible[i].ID < eligible[j].ID
	})

	cut := len(eligible)
	if cut > minValues {
		cut = minValues
	}
	top := eligible[:cut:cut]
	threshold := top[len(top)-1].Average

	if len(eligible) > minValues {
		for _, e := range eligible[minValues:] {
			if e.Average == threshold {
				top = append(top, e)
			}
		}
	}

	out := make([]entity.TopBook, len(top))
	for i, e := range top {
		out[i] = entity.TopBook{ID: e.ID, Title: e.Title, Average: e.Average}
	}
	return out
}
