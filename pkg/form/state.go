package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Dotted-path helpers over a value bag. Paths address nested maps by key and
// slices by numeric segment ("workHistories.0.company"). Writers create
// intermediate containers as needed so a Set against a blank form works.

// GetValue reads the value at a dotted path. The second return reports
// whether the path resolved.
func GetValue(bag map[string]any, path string) (any, bool) {
	return getPath(bag, path)
}

// SetValue writes a value at a dotted path, creating intermediate containers
// as needed. Numeric segments address (and grow) lists.
func SetValue(bag map[string]any, path string, value any) error {
	return setPath(bag, path, value)
}

func getPath(root map[string]any, path string) (any, bool) {
	if root == nil || path == "" {
		return nil, false
	}
	current := any(root)
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func setPath(root map[string]any, path string, value any) error {
	if root == nil {
		return fmt.Errorf("form: value bag is nil")
	}
	segments := strings.Split(path, ".")
	if len(segments) == 0 || segments[0] == "" {
		return fmt.Errorf("form: empty path")
	}
	_, err := setSegments(root, segments, value)
	return err
}

// setSegments walks container-by-container. It returns the (possibly
// reallocated) container so parents can re-link grown slices.
func setSegments(container any, segments []string, value any) (any, error) {
	segment := segments[0]
	last := len(segments) == 1

	switch node := container.(type) {
	case map[string]any:
		if last {
			node[segment] = value
			return node, nil
		}
		child := node[segment]
		if child == nil {
			child = emptyContainerFor(segments[1])
		}
		updated, err := setSegments(child, segments[1:], value)
		if err != nil {
			return nil, err
		}
		node[segment] = updated
		return node, nil

	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("form: expected list index, got %q", segment)
		}
		for len(node) <= idx {
			node = append(node, nil)
		}
		if last {
			node[idx] = value
			return node, nil
		}
		child := node[idx]
		if child == nil {
			child = emptyContainerFor(segments[1])
		}
		updated, err := setSegments(child, segments[1:], value)
		if err != nil {
			return nil, err
		}
		node[idx] = updated
		return node, nil

	default:
		return nil, fmt.Errorf("form: cannot descend into %T at segment %q", container, segment)
	}
}

func emptyContainerFor(nextSegment string) any {
	if _, err := strconv.Atoi(nextSegment); err == nil {
		return []any{}
	}
	return map[string]any{}
}

func deepCopyBag(src map[string]any) map[string]any {
	if src == nil {
		return make(map[string]any)
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = deepCopyValue(value)
	}
	return out
}

func deepCopyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return deepCopyBag(typed)
	case []any:
		clone := make([]any, len(typed))
		for i, item := range typed {
			clone[i] = deepCopyValue(item)
		}
		return clone
	default:
		return typed
	}
}
