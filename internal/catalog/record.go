package catalog

import (
	"strings"
)

// Record is a single searchable entry. Only Title is matched against.
type Record struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// URL joins baseURL and the record slug with exactly one slash.
func (r Record) URL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	slug := strings.TrimLeft(r.Slug, "/")

	if slug == "" {
		return base
	}

	return base + "/" + slug
}

// String returns a short human-readable form used in logs.
func (r Record) String() string {
	if r.ID == "" {
		return r.Title
	}

	return r.ID + " " + r.Title
}
