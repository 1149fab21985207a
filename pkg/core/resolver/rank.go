package resolver

import (
	"sort"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

// ClickWeight is the priority gained per recorded click (20 clicks = +1).
const ClickWeight = 0.05

// Score blends a link's static priority with its accumulated clicks.
func Score(link domain.Link) float64 {
	return link.Priority + float64(link.Clicks)*ClickWeight
}

// Rank returns a copy of links ordered by descending Score.
// Equal scores keep their input order.
func Rank(links []domain.Link) []domain.Link {
	out := make([]domain.Link, len(links))
	copy(out, links)

	// Stable sort: equal scores keep insertion order (deterministic output)
	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i]) > Score(out[j])
	})
	return out
}
