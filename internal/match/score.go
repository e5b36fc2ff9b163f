package match

import (
	"strings"

	"wcag-search/internal/catalog"
)

// Multipliers applied to base scores. A literal match on the query is worth
// a hundred typo-variant matches.
const (
	LiteralMultiplier = 100
	TypoMultiplier    = 1
)

// Scored pairs a record with its relevance score.
type Scored struct {
	Record catalog.Record

	// Score is the final relevance (0 means excluded).
	Score int

	// Category is the classification of the unmodified query. It stays
	// CategoryNone when the score came from typo variants.
	Category Category

	// Typo is true when typo expansion produced the score.
	Typo bool
}

// Options tunes a Scorer.
type Options struct {
	// TypoTolerance enables the typo-expansion fallback. Without it a record
	// scores only when the literal query classifies.
	TypoTolerance bool
}

// DefaultOptions returns the options used by FuzzyScore and Search.
func DefaultOptions() Options {
	return Options{TypoTolerance: true}
}

// Scorer scores records against a query.
type Scorer struct {
	opts Options
}

// NewScorer creates a Scorer with the given options.
func NewScorer(opts Options) *Scorer {
	return &Scorer{opts: opts}
}

// FuzzyScore scores a record with DefaultOptions.
func FuzzyScore(r catalog.Record, query string) Scored {
	return NewScorer(DefaultOptions()).Score(r, query)
}

// Score computes the relevance of r for query.
//
// The literal query is classified first; a nonzero literal score is returned
// as is and typo variants are never consulted. Otherwise the score is the
// sum, over every distinct single-edit variant of the query, of that
// variant's base score.
func (s *Scorer) Score(r catalog.Record, query string) Scored {
	query = Normalize(query)

	return s.score(r, query, func() []string { return Typos(query) })
}

// score expects a normalized query. variants is only called when the literal
// query does not classify.
func (s *Scorer) score(r catalog.Record, query string, variants func() []string) Scored {
	text := Normalize(r.Title)
	words := strings.Fields(text)

	result := Scored{Record: r}

	category := classifyNormalized(text, words, query)
	if literal := LiteralMultiplier * BaseScore(category); literal > 0 {
		result.Score = literal
		result.Category = category

		return result
	}

	if !s.opts.TypoTolerance {
		return result
	}

	total := 0
	for _, variant := range variants() {
		total += TypoMultiplier * BaseScore(classifyNormalized(text, words, variant))
	}

	result.Score = total
	result.Typo = total > 0

	return result
}

// lazyTypos generates the typo set of query on first use and reuses it for
// the rest of one ranking pass.
func lazyTypos(query string) func() []string {
	var (
		variants  []string
		generated bool
	)

	return func() []string {
		if !generated {
			variants = Typos(query)
			generated = true
		}

		return variants
	}
}
