package match

import (
	"slices"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Transpositions returns one variant per adjacent character pair of q, with
// that pair swapped. A query of n characters yields n-1 variants.
func Transpositions(q string) []string {
	runes := []rune(q)
	if len(runes) < 2 {
		return nil
	}

	out := make([]string, 0, len(runes)-1)

	for i := 0; i+1 < len(runes); i++ {
		swapped := slices.Clone(runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		out = append(out, string(swapped))
	}

	return out
}

// Substitutions returns, for every position of q and every lowercase ASCII
// letter, q with that position replaced by the letter. A query of n
// characters yields 26*n variants, including the no-op where the letter
// already sits at that position.
func Substitutions(q string) []string {
	runes := []rune(q)
	out := make([]string, 0, len(runes)*len(alphabet))

	for i := range runes {
		replaced := slices.Clone(runes)
		for _, letter := range alphabet {
			replaced[i] = letter
			out = append(out, string(replaced))
		}
	}

	return out
}

// Typos returns the sorted, deduplicated set of single-edit variants of q:
// every transposition and every substitution.
func Typos(q string) []string {
	variants := append(Transpositions(q), Substitutions(q)...)

	slices.Sort(variants)

	return slices.Compact(variants)
}
