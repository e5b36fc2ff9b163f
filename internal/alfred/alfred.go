// Package alfred renders search outcomes as Alfred script-filter items.
//
// The envelope written to stdout is:
//
//	{"items": [{"title": "...", "subtitle": "...", "arg": "..."}]}
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"wcag-search/internal/catalog"
	"wcag-search/internal/diagnostic"
)

// Environment variables Alfred sets for workflow processes.
const (
	EnvWorkflowName    = "alfred_workflow_name"
	EnvWorkflowVersion = "alfred_workflow_version"
	EnvAlfredVersion   = "alfred_version"
)

// Icon files shipped with the workflow.
const (
	IconWarn  = "warn.png"
	IconError = "error.png"
)

// Item is one row of a script-filter result.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
	Text     *Text  `json:"text,omitempty"`
}

// Icon points at an image relative to the workflow directory.
type Icon struct {
	Path string `json:"path"`
}

// Text overrides what ⌘C copies and what ⌘L shows in large type.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

type envelope struct {
	Items []Item `json:"items"`
}

// Empty is shown before anything is typed. Actioning it opens baseURL.
func Empty(baseURL string) Item {
	return Item{
		Title:    "Search the web accessibility guidelines (WCAG 2.1)",
		Subtitle: "e.g. keyboard. When the search is empty, you can open WCAG in your browser",
		Arg:      baseURL,
	}
}

// NotFound is shown when nothing matched query. suggestion, when non-empty,
// is offered as a likely intended spelling.
func NotFound(query, suggestion, baseURL string) Item {
	subtitle := `Maybe refine your search? You can search for keywords like "keyboard" or "label"`
	if suggestion != "" {
		subtitle = fmt.Sprintf("Did you mean %q? You can also search for keywords like \"keyboard\" or \"label\"", suggestion)
	}

	return Item{
		Title:    fmt.Sprintf("Oops! Couldn't find anything for %s", query),
		Subtitle: subtitle,
		Arg:      baseURL,
		Icon:     &Icon{Path: IconWarn},
	}
}

// FromRecord links a record to its page under baseURL.
func FromRecord(r catalog.Record, baseURL string) Item {
	url := r.URL(baseURL)

	return Item{
		Title:    r.Title,
		Subtitle: fmt.Sprintf("Open %s in your browser", url),
		Arg:      url,
	}
}

// FromRecords converts records in order.
func FromRecords(records []catalog.Record, baseURL string) []Item {
	items := make([]Item, len(records))
	for i, r := range records {
		items[i] = FromRecord(r, baseURL)
	}

	return items
}

// Error renders a failure. The item cannot be actioned; its large type shows
// the error and its copy text carries workflow and Alfred versions for bug
// reports.
func Error(d diagnostic.Diagnostic) Item {
	valid := false

	copyText := fmt.Sprintf("```\n%s\n```\n-\n%s v%s\nAlfred v%s",
		d.String(),
		envOr(EnvWorkflowName, "No workflow name found"),
		envOr(EnvWorkflowVersion, "No workflow version found"),
		envOr(EnvAlfredVersion, "No Alfred version found"),
	)

	return Item{
		Title:    "Oops! You've stumbled upon an error!",
		Subtitle: "Press ⌘L to see the full error and ⌘C to copy it.",
		Valid:    &valid,
		Icon:     &Icon{Path: IconError},
		Text: &Text{
			Copy:      copyText,
			LargeType: d.Message,
		},
	}
}

// Write encodes items as a script-filter envelope.
func Write(w io.Writer, items ...Item) error {
	if items == nil {
		items = []Item{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(envelope{Items: items}); err != nil {
		return fmt.Errorf("failed to write alfred items: %w", err)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
