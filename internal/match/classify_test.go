package match

import (
	"testing"
)

func TestBaseScore(t *testing.T) {
	tests := []struct {
		category Category
		expected int
	}{
		{CategoryExact, 10},
		{CategoryContained, 8},
		{CategoryStartsWith, 7},
		{CategoryEndsWith, 5},
		{CategoryPartiallyContained, 6},
		{CategoryNone, 0},
		{Category(42), 0},
		{Category(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if got := BaseScore(tt.category); got != tt.expected {
				t.Errorf("BaseScore(%v) = %d, want %d", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryExact, "Exact"},
		{CategoryContained, "Contained"},
		{CategoryStartsWith, "StartsWith"},
		{CategoryEndsWith, "EndsWith"},
		{CategoryPartiallyContained, "PartiallyContained"},
		{CategoryNone, "None"},
		{Category(42), "Category(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.category.String(); got != tt.expected {
				t.Errorf("Category.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCategories_PrecedenceOrder(t *testing.T) {
	expected := []Category{
		CategoryExact,
		CategoryContained,
		CategoryStartsWith,
		CategoryEndsWith,
		CategoryPartiallyContained,
		CategoryNone,
	}

	got := Categories()
	if len(got) != len(expected) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(expected))
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], expected[i])
		}
	}

	// Each category outranks every later one
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if !got[i].Outranks(got[j]) {
				t.Errorf("%v should outrank %v", got[i], got[j])
			}

			if got[j].Outranks(got[i]) {
				t.Errorf("%v should not outrank %v", got[j], got[i])
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text     string
		query    string
		expected Category
	}{
		// Exact
		{"label", "label", CategoryExact},
		{"Label", "label", CategoryExact},
		{"  Keyboard ", "KEYBOARD", CategoryExact},
		{"Headings and Labels", "headings and labels", CategoryExact},

		// Contained: a whole word
		{"label and heading", "label", CategoryContained},
		{"Headings and Label", "label", CategoryContained},
		{"Headings  and\tLabel", "and", CategoryContained},

		// StartsWith
		{"labels", "label", CategoryStartsWith},
		{"Labels or Instructions", "label", CategoryStartsWith},
		{"Headings and Labels", "label", CategoryStartsWith},

		// EndsWith
		{"label", "abel", CategoryEndsWith},
		{"Use of Color", "olor", CategoryEndsWith},

		// PartiallyContained
		{"capables", "able", CategoryPartiallyContained},
		{"Keyboard", "ybo", CategoryPartiallyContained},

		// None
		{"xyz", "abc", CategoryNone},
		{"Headings and Labels", "keyboard", CategoryNone},
		{"label", "labels", CategoryNone}, // query longer than every word
		{"", "label", CategoryNone},

		// Multi-word query never matches a single word
		{"Headings and Labels", "and labels", CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.text+"_"+tt.query, func(t *testing.T) {
			if got := Classify(tt.text, tt.query); got != tt.expected {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.expected)
			}
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	// "abab" starts with, ends with and contains "ab"; StartsWith wins
	if got := Classify("abab", "ab"); got != CategoryStartsWith {
		t.Errorf("Classify(abab, ab) = %v, want %v", got, CategoryStartsWith)
	}

	// A whole-word match elsewhere beats a prefix match earlier in the text
	if got := Classify("labels label", "label"); got != CategoryContained {
		t.Errorf("Classify(labels label, label) = %v, want %v", got, CategoryContained)
	}

	// A suffix match beats a substring match regardless of word order
	if got := Classify("table capable", "able"); got != CategoryEndsWith {
		t.Errorf("Classify(table capable, able) = %v, want %v", got, CategoryEndsWith)
	}
}

func TestClassify_WholeWordIsAtLeastContained(t *testing.T) {
	titles := []string{
		"Headings and Labels",
		"Info and Relationships",
		"Audio-only and Video-only (Prerecorded)",
		"Name, Role, Value",
	}

	for _, title := range titles {
		for _, word := range Words(title) {
			got := Classify(title, word)
			if got != CategoryContained && got != CategoryExact {
				t.Errorf("Classify(%q, %q) = %v, want Contained or Exact", title, word, got)
			}

			if BaseScore(got) < ScoreContained {
				t.Errorf("BaseScore for whole word %q in %q = %d, want >= %d",
					word, title, BaseScore(got), ScoreContained)
			}
		}
	}
}

func TestClassify_EmptyInputsDoNotPanic(t *testing.T) {
	if got := Classify("", ""); got != CategoryExact {
		t.Errorf("Classify(\"\", \"\") = %v, want %v", got, CategoryExact)
	}

	// Empty query trivially prefixes every word; callers must guard against it
	if got := Classify("Keyboard", ""); got != CategoryStartsWith {
		t.Errorf("Classify(Keyboard, \"\") = %v, want %v", got, CategoryStartsWith)
	}
}
