package match

import (
	"wcag-search/internal/catalog"
)

// MaxSuggestDistance is the largest edit distance Suggest accepts.
const MaxSuggestDistance = 2

// Suggest returns the title word closest to query by edit distance, for
// "did you mean" hints after a search found nothing. The distance must be at
// most MaxSuggestDistance and smaller than the query length, so very short
// queries get no suggestion. Ties go to the word seen first.
func Suggest(query string, records []catalog.Record) (string, bool) {
	query = Normalize(query)
	limit := min(MaxSuggestDistance, len([]rune(query))-1)

	best, bestDist := "", limit+1

	for _, r := range records {
		for _, w := range Words(r.Title) {
			if w == query {
				continue
			}

			if d := Levenshtein(w, query); d < bestDist {
				best, bestDist = w, d
			}
		}
	}

	return best, best != ""
}
