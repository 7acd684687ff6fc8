package vanilla

import (
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// valueAt resolves a dotted path against a nested value bag. Numeric segments
// index into lists. Missing segments resolve to nil.
func valueAt(bag map[string]any, path string) any {
	if len(bag) == 0 || path == "" {
		return nil
	}

	var current any = bag
	for _, segment := range strings.Split(path, ".") {
		switch container := current.(type) {
		case map[string]any:
			current = container[segment]
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(container) {
				return nil
			}
			current = container[index]
		default:
			return nil
		}
	}
	return current
}

// themeStyle flattens a theme selection's manifest tokens into a CSS custom
// property declaration block for the form root's style attribute.
func themeStyle(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return ""
	}

	names := make([]string, 0, len(selection.Manifest.Tokens))
	for name := range selection.Manifest.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		property := name
		if !strings.HasPrefix(property, "--") {
			property = "--fk-" + property
		}
		sb.WriteString(property)
		sb.WriteString(": ")
		sb.WriteString(selection.Manifest.Tokens[name])
		sb.WriteString("; ")
	}
	return strings.TrimSpace(sb.String())
}
