package catalog

import (
	"strconv"
	"strings"

	"wcag-search/internal/diagnostic"
)

// Validate reports catalog problems. Blank titles are errors because the
// matcher must never see them; duplicate ids and missing slugs are warnings.
func Validate(records []Record) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]bool, len(records))

	for i, r := range records {
		subject := r.ID
		if subject == "" {
			subject = "#" + strconv.Itoa(i)
		}

		if strings.TrimSpace(r.Title) == "" {
			diags.AddError(diagnostic.CodeBlankTitle, "record has a blank title", subject)
		}

		if r.Slug == "" {
			diags.AddWarning(diagnostic.CodeMissingSlug, "record has no slug, its link points at the base URL", subject)
		}

		if r.ID == "" {
			continue
		}

		if seen[r.ID] {
			diags.AddWarning(diagnostic.CodeDuplicateID, "id appears more than once", subject)
		}

		seen[r.ID] = true
	}

	return diags
}
