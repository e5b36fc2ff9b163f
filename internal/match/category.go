package match

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category is the way a normalized query relates to a normalized text.
// The zero value is CategoryNone.
type Category int

const (
	// CategoryNone means no rule matched.
	CategoryNone Category = iota
	// CategoryPartiallyContained means some word contains the query in its middle.
	CategoryPartiallyContained
	// CategoryEndsWith means some word ends with the query.
	CategoryEndsWith
	// CategoryStartsWith means some word begins with the query.
	CategoryStartsWith
	// CategoryContained means some word equals the query.
	CategoryContained
	// CategoryExact means the whole text equals the query.
	CategoryExact
)

// Base scores per category. PartiallyContained outweighs EndsWith even though
// EndsWith takes precedence during classification.
const (
	ScoreExact              = 10
	ScoreContained          = 8
	ScoreStartsWith         = 7
	ScorePartiallyContained = 6
	ScoreEndsWith           = 5
	ScoreNone               = 0
)

var baseScores = map[Category]int{
	CategoryExact:              ScoreExact,
	CategoryContained:          ScoreContained,
	CategoryStartsWith:         ScoreStartsWith,
	CategoryPartiallyContained: ScorePartiallyContained,
	CategoryEndsWith:           ScoreEndsWith,
	CategoryNone:               ScoreNone,
}

// BaseScore returns the integer weight of a category. Unknown values score 0.
func BaseScore(c Category) int {
	return baseScores[c]
}

// Categories returns all categories in classification precedence order,
// strongest first.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}

	return append(out, CategoryNone)
}

// Outranks reports whether c takes precedence over other during classification.
func (c Category) Outranks(other Category) bool {
	return c.precedence() < other.precedence()
}

// precedence is the index of c in the rule table; CategoryNone and unknown
// values sort last.
func (c Category) precedence() int {
	for i, r := range rules {
		if r.category == c {
			return i
		}
	}

	return len(rules)
}
