package schema

import (
	"sort"
	"strconv"
	"strings"
)

// ErrorMap collects validation messages keyed by dotted field path
// (e.g. "email", "workHistories.0.company"). A nil or empty map means the
// validated value is valid. Maps are rebuilt whole on every validation pass,
// never patched incrementally.
type ErrorMap map[string][]string

// Add appends a message to the given path, skipping blanks and duplicates.
func (e ErrorMap) Add(path, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	for _, existing := range e[path] {
		if existing == message {
			return
		}
	}
	e[path] = append(e[path], message)
}

// Merge folds all entries of other into e.
func (e ErrorMap) Merge(other ErrorMap) {
	for path, messages := range other {
		for _, message := range messages {
			e.Add(path, message)
		}
	}
}

// MergeAt folds other into e with every path prefixed. Used by composite
// nodes to scope child errors: objects prefix the field name, arrays the
// element index.
func (e ErrorMap) MergeAt(prefix string, other ErrorMap) {
	for path, messages := range other {
		full := prefix
		if path != "" {
			full = prefix + "." + path
		}
		for _, message := range messages {
			e.Add(full, message)
		}
	}
}

// Has reports whether the path carries at least one message.
func (e ErrorMap) Has(path string) bool {
	return len(e[path]) > 0
}

// First returns the first message for the path, or "".
func (e ErrorMap) First(path string) string {
	if messages := e[path]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Paths returns the error paths in sorted order.
func (e ErrorMap) Paths() []string {
	if len(e) == 0 {
		return nil
	}
	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Empty reports whether the map holds no messages.
func (e ErrorMap) Empty() bool {
	return len(e) == 0
}

// errorsAt builds a single-entry map. Convenience for leaf nodes.
func errorsAt(path, message string) ErrorMap {
	errs := make(ErrorMap, 1)
	errs.Add(path, message)
	return errs
}

// indexPath renders an array element prefix ("0", "1", ...).
func indexPath(index int) string {
	return strconv.Itoa(index)
}
