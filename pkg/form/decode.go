package form

import (
	"net/url"
	"sort"
)

// Decode folds a flat name=value payload (an HTML form post) into a nested
// value bag using the dotted-path convention renderers emit for input names.
// Keys are applied in sorted order so list indices materialise low-to-high.
// Repeated keys keep the last value, matching browser behaviour for inputs
// that share a name (hidden checkbox fallbacks).
func Decode(values url.Values) (map[string]any, error) {
	bag := make(map[string]any)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entries := values[key]
		if len(entries) == 0 {
			continue
		}
		if err := setPath(bag, key, entries[len(entries)-1]); err != nil {
			return nil, err
		}
	}
	return bag, nil
}

// Apply decodes payload and writes every leaf into the form via Set, so
// touched flags and change-mode validation behave as if the user had edited
// each field.
func (f *Form) Apply(payload url.Values) error {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entries := payload[key]
		if len(entries) == 0 {
			continue
		}
		if err := f.Set(key, entries[len(entries)-1]); err != nil {
			return err
		}
	}
	return nil
}
