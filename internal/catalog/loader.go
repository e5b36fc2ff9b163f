package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyCatalog is returned when the data file holds no usable records.
var ErrEmptyCatalog = errors.New("catalog contains no records")

// LoadFile loads and parses a JSON catalog from the given path.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a JSON array of records and normalizes their titles.
func Parse(data []byte) ([]Record, error) {
	var raw []Record

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	records := make([]Record, 0, len(raw))

	for _, r := range raw {
		r.Title = NormalizeTitle(r.Title)
		if r.Title == "" {
			continue
		}

		r.ID = strings.TrimSpace(r.ID)
		r.Slug = strings.TrimSpace(r.Slug)
		records = append(records, r)
	}

	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	return records, nil
}

// NormalizeTitle applies NFKC normalization, trims surrounding whitespace and
// drops control characters. Tabs and newlines become plain spaces so that
// word splitting in the matcher sees them as separators.
func NormalizeTitle(title string) string {
	normed := norm.NFKC.String(title)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}

		if unicode.IsControl(r) {
			return -1
		}

		return r
	}, normed)

	return strings.TrimSpace(normed)
}
