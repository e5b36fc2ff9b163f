// Package match provides query normalization, match classification,
// typo expansion and ranking of catalog records against a short query.
//
// Key functions:
//   - Classify: decides how a query relates to a title (exact, whole word,
//     prefix, suffix, substring or none)
//   - BaseScore: maps a Category to its integer weight
//   - Typos: generates the single-edit spelling variants of a query
//   - FuzzyScore: scores one record, literal matches first, typo variants second
//   - Search: scores, filters and stably orders a list of records
//   - Suggest: proposes the closest title word for a query that matched nothing
//
// Every function in this package is pure. Scoring one record never depends on
// another, so callers may fan the per-record work out if they need to.
package match
