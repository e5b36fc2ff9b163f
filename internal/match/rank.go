package match

import (
	"sort"

	"wcag-search/internal/catalog"
)

// ScoredList is a list of scored records with ranking functionality.
type ScoredList []Scored

// Search ranks records against query with DefaultOptions and returns them
// best first. The boolean is false when no record matched.
//
// The query must be non-empty after trimming; an empty query is the caller's
// "nothing typed yet" state and is never searched.
func Search(query string, records []catalog.Record) ([]catalog.Record, bool) {
	ranked := NewScorer(DefaultOptions()).Rank(query, records)
	if len(ranked) == 0 {
		return nil, false
	}

	return ranked.Records(), true
}

// Rank scores every record, drops those scoring zero and returns the rest
// sorted by score (descending). Records with equal scores keep their input
// order.
func (s *Scorer) Rank(query string, records []catalog.Record) ScoredList {
	query = Normalize(query)
	variants := lazyTypos(query)

	var ranked ScoredList

	for _, r := range records {
		scored := s.score(r, query, variants)
		if scored.Score <= 0 {
			continue
		}

		ranked = append(ranked, scored)
	}

	// Stable keeps input order among equal scores
	sort.Stable(ranked)

	return ranked
}

// Len implements sort.Interface.
func (l ScoredList) Len() int { return len(l) }

// Swap implements sort.Interface.
func (l ScoredList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less implements sort.Interface.
// Higher score comes first; ties are left to the stable sort.
func (l ScoredList) Less(i, j int) bool {
	return l[i].Score > l[j].Score
}

// Records drops the scores and returns the records in list order.
func (l ScoredList) Records() []catalog.Record {
	out := make([]catalog.Record, len(l))
	for i, s := range l {
		out[i] = s.Record
	}

	return out
}

// Top returns the top n entries. n <= 0 means no limit.
func (l ScoredList) Top(n int) ScoredList {
	if n <= 0 || n >= len(l) {
		return l
	}

	return l[:n]
}

// Best returns the best entry, or nil if the list is empty.
func (l ScoredList) Best() *Scored {
	if len(l) == 0 {
		return nil
	}

	return &l[0]
}
