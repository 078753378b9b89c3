// Package prompt implements the interactive question flow.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxKeywords is the most keywords a manifest may carry.
const MaxKeywords = 5

// Categories is the fixed allow-list for the categories question.
var Categories = []string{
	"AI",
	"Azure",
	"Chat",
	"Data Science",
	"Debuggers",
	"Education",
	"Extension Packs",
	"Formatters",
	"Keymaps",
	"Language Packs",
	"Linters",
	"Machine Learning",
	"Notebooks",
	"Programming Languages",
	"SCM Providers",
	"Snippets",
	"Testing",
	"Themes",
	"Visualization",
	"Other",
}

var (
	namePattern = regexp.MustCompile(`^[a-z-]+$`)
	listSplit   = regexp.MustCompile(`\s*,\s*`)
	titleCaser  = cases.Title(language.English)
)

// Capitalize turns a hyphenated extension name into its display form:
// "my-extension" becomes "My Extension".
func Capitalize(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// SplitList splits a comma-separated input, tolerating surrounding
// whitespace. Empty input yields nil.
func SplitList(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	return listSplit.Split(trimmed, -1)
}

// ValidateName checks the extension name against the lowercase-with-hyphens
// pattern.
func ValidateName(input string) error {
	if !namePattern.MatchString(input) {
		return fmt.Errorf("name must contain only lowercase letters and hyphens")
	}
	return nil
}

// ValidateDisplayName returns a validator tied to the chosen extension name.
// An empty value is rejected; a value that differs from the capitalized form
// of name gets a recommendation message and must be edited.
func ValidateDisplayName(name string) func(string) error {
	recommended := Capitalize(name)
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("display name is required")
		}
		if input != recommended {
			return fmt.Errorf("display name %q is recommended", recommended)
		}
		return nil
	}
}

// ValidateNonEmpty returns a validator rejecting blank input.
func ValidateNonEmpty(field string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateKeywords checks the comma-separated keyword input.
func ValidateKeywords(input string) error {
	keywords := SplitList(input)
	if len(keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	if len(keywords) > MaxKeywords {
		return fmt.Errorf("at most %d keywords are allowed, got %d", MaxKeywords, len(keywords))
	}
	return nil
}

// ValidateCategories checks the comma-separated category input against the
// allow-list. The error names every invalid entry and the full allow-list.
func ValidateCategories(input string) error {
	entries := SplitList(input)
	if len(entries) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	var invalid []string
	for _, entry := range entries {
		if !validCategory(entry) {
			invalid = append(invalid, entry)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid categories: %s (allowed: %s)",
			strings.Join(invalid, ", "), strings.Join(Categories, ", "))
	}
	return nil
}

func validCategory(entry string) bool {
	for _, c := range Categories {
		if entry == c {
			return true
		}
	}
	return false
}
