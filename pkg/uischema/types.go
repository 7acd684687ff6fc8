// Package uischema loads UI hint documents (JSON or YAML) that customise how
// built form models render: labels, placeholders, widget overrides, icons.
// The model builder stays unaware of presentation overlays; hints apply as
// decorators after the build.
package uischema

import "strings"

// Store keeps the parsed hints from UI schema documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]FormHints
}

// FormHints describes the overrides for one form id.
type FormHints struct {
	ID     string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig captures form-level overrides.
type FormConfig struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FieldConfig customises how a single field renders.
type FieldConfig struct {
	Label        string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Widget       string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	Icon         string            `json:"icon,omitempty" yaml:"icon,omitempty"`
	UIHints      map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
	OriginalPath string            `json:"-" yaml:"-"`
}

// NormalizeFieldPath converts UI schema field keys into dot/".items" notation
// ("workHistories[].company" becomes "workHistories.items.company").
func NormalizeFieldPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"[].", ".items.",
		"[]", ".items",
		"[", ".",
		"]", "",
	)
	normalised := replacer.Replace(trimmed)
	normalised = strings.TrimPrefix(normalised, ".")
	for strings.Contains(normalised, "..") {
		normalised = strings.ReplaceAll(normalised, "..", ".")
	}
	return strings.Trim(normalised, ".")
}
