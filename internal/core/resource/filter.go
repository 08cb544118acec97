package resource

import (
	"strings"

	"github.com/txsn/navigator/pkg/normalize"
	"github.com/txsn/navigator/pkg/pointer"
)

// Filter narrows an already-fetched match list without reordering it.
//
// Rank 0 means "all tiers". Query is matched as a folded (case- and
// accent-insensitive) substring against the searchable text of each entry.
type Filter struct {
	Rank  int
	Query string
}

// Apply returns the subset of matches passing the filter, in input order.
// Filtering only ever selects a subset; it never changes the ranking.
func Apply(matches []*Match, filter Filter) []*Match {
	query := strings.TrimSpace(filter.Query)

	out := make([]*Match, 0, len(matches))
	for _, m := range matches {
		if filter.Rank != 0 && m.MatchRank != filter.Rank {
			continue
		}
		if query != "" && !normalize.Contains(searchBlob(m), query) {
			continue
		}
		out = append(out, m)
	}

	return out
}

// searchBlob concatenates the fields a free-text query is matched against:
// title, organization, languages, and both locale descriptions.
func searchBlob(m *Match) string {
	return strings.Join([]string{
		m.Title,
		pointer.Val(m.Organization),
		pointer.Val(m.Languages),
		pointer.Val(m.DescriptionEN),
		pointer.Val(m.DescriptionES),
	}, " ")
}
