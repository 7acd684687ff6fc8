package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
)

// ErrorMapping splits a validation payload into field-level and form-level
// messages keyed by the dotted field paths used throughout the render
// pipeline.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors normalises an error payload against the form's known field paths.
// Array indices are matched structurally ("workHistories.3.company" matches
// the repeater's entry shape regardless of index). Unknown paths degrade to
// form-level messages so nothing is silently dropped.
func MapErrors(form model.FormModel, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		return mapping
	}

	shapes := make(map[string]struct{})
	collectFieldShapes(form.Fields, "", shapes)

	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		path := strings.TrimSpace(rawPath)
		if path == "" || !matchesShape(path, shapes) {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[path] = append(mapping.Fields[path], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// collectFieldShapes records every addressable path with array indices
// abstracted to "*" ("workHistories.*.company").
func collectFieldShapes(fields []model.Field, prefix string, shapes map[string]struct{}) {
	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		shapes[path] = struct{}{}

		if len(field.Nested) > 0 {
			collectFieldShapes(field.Nested, path, shapes)
		}
		if field.Items != nil {
			entry := path + ".*"
			shapes[entry] = struct{}{}
			collectFieldShapes(field.Items.Nested, entry, shapes)
		}
	}
}

func matchesShape(path string, shapes map[string]struct{}) bool {
	if _, ok := shapes[path]; ok {
		return true
	}
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			segments[i] = "*"
		}
	}
	_, ok := shapes[strings.Join(segments, ".")]
	return ok
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
