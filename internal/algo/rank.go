package algo

import (
	"cmp"
	"slices"

	"github.com/atharv3903/flightplan/internal/model"
)

// DefaultTop is how many paths a plan reports.
const DefaultTop = 3

// Rank returns a copy of paths stably sorted ascending by the criterion.
// Ties keep enumeration order.
func Rank(paths []model.Path, c model.Criterion) []model.Path {
	ranked := slices.Clone(paths)
	if c == model.ByTime {
		slices.SortStableFunc(ranked, func(a, b model.Path) int {
			return cmp.Compare(a.TotalTime, b.TotalTime)
		})
	} else {
		slices.SortStableFunc(ranked, func(a, b model.Path) int {
			return cmp.Compare(a.TotalCost, b.TotalCost)
		})
	}
	return ranked
}

// Select ranks paths and keeps the first min(k, len(paths)). k < 1 means
// DefaultTop.
func Select(paths []model.Path, c model.Criterion, k int) []model.Path {
	if k < 1 {
		k = DefaultTop
	}
	ranked := Rank(paths, c)
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
