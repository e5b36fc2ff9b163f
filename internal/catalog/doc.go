// Package catalog provides the searchable record type and the loader for the
// static JSON data file the search engine ranks.
//
// The data file is a JSON array of objects:
//
//	[
//	  {"id": "1.3.1", "slug": "info-and-relationships", "title": "Info and Relationships"},
//	  {"id": "2.4.6", "slug": "headings-and-labels", "title": "Headings and Labels"}
//	]
//
// Titles are normalized at load time (NFKC, trimmed, control characters
// removed). Records whose title is empty after normalization are dropped so
// that the engine never sees an empty candidate.
package catalog
