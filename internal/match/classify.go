package match

import (
	"strings"
)

// rule pairs a category with the predicate that detects it.
// The predicate receives the normalized text, its words and the normalized query.
type rule struct {
	category Category
	matches  func(text string, words []string, query string) bool
}

// rules is the classification table in strict precedence order.
// The first rule whose predicate holds wins.
var rules = []rule{
	{CategoryExact, func(text string, _ []string, query string) bool {
		return text == query
	}},
	{CategoryContained, func(_ string, words []string, query string) bool {
		return anyWord(words, func(w string) bool { return w == query })
	}},
	{CategoryStartsWith, func(_ string, words []string, query string) bool {
		return anyWord(words, func(w string) bool { return strings.HasPrefix(w, query) })
	}},
	{CategoryEndsWith, func(_ string, words []string, query string) bool {
		return anyWord(words, func(w string) bool { return strings.HasSuffix(w, query) })
	}},
	{CategoryPartiallyContained, func(_ string, words []string, query string) bool {
		return anyWord(words, func(w string) bool { return strings.Contains(w, query) })
	}},
}

// Classify decides which category describes how query relates to text.
// Both strings are normalized first. An empty query is a caller error: it
// trivially satisfies every prefix/suffix/substring check, so callers guard
// against it before classifying.
func Classify(text, query string) Category {
	text = Normalize(text)
	query = Normalize(query)

	return classifyNormalized(text, strings.Fields(text), query)
}

// classifyNormalized runs the rule table on already normalized input.
// Used by the scorer to split the title only once per record.
func classifyNormalized(text string, words []string, query string) Category {
	for _, r := range rules {
		if r.matches(text, words, query) {
			return r.category
		}
	}

	return CategoryNone
}

func anyWord(words []string, pred func(string) bool) bool {
	for _, w := range words {
		if pred(w) {
			return true
		}
	}

	return false
}
