package recon

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/netproof-dev/netproof/internal/model"
)

// entry is a body row with its derived fields, computed once and never
// mutated afterward.
type entry struct {
	row      model.Row
	net      decimal.Decimal
	matchKey string
}

// zeroPlaces is the rounding precision of the netting test.
const zeroPlaces = 4

// partition groups entries by match key and splits them into matched (the
// group's net values sum to zero when rounded to 4 decimal places) and
// unmatched. Two passes: accumulate per-key sums, then classify each entry
// against the finalized sums. Unmatched keeps original statement order;
// matched is stably sorted by match key so same-key rows sit adjacently.
func partition(entries []entry) (matched, unmatched []entry) {
	sums := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		sums[e.matchKey] = sums[e.matchKey].Add(e.net)
	}

	for _, e := range entries {
		if sums[e.matchKey].Round(zeroPlaces).IsZero() {
			matched = append(matched, e)
		} else {
			unmatched = append(unmatched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].matchKey < matched[j].matchKey
	})
	return matched, unmatched
}
