package form

import (
	"fmt"
	"strconv"
	"strings"
)

// List manages one array-valued path on a Form: append at the end, remove by
// index. Removal shifts later indices down and drops the stale touched flags
// and errors the shift leaves behind. There is no reorder operation.
type List struct {
	form *Form
	path string
}

// List returns a manager for the array at path.
func (f *Form) List(path string) *List {
	return &List{form: f, path: path}
}

// Len reports the current number of entries.
func (l *List) Len() int {
	return len(l.entries())
}

// Entries returns a deep copy of the current elements.
func (l *List) Entries() []any {
	items := l.entries()
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = deepCopyValue(item)
	}
	return out
}

// Append inserts entry at the end. Pass the caller's default values for a
// blank row.
func (l *List) Append(entry map[string]any) error {
	items := append(l.entries(), deepCopyValue(entry))
	return l.write(items)
}

// Remove deletes the element at index; later elements shift down one slot.
func (l *List) Remove(index int) error {
	items := l.entries()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("form: list index %d out of range (len %d)", index, len(items))
	}
	items = append(items[:index], items[index+1:]...)
	l.form.dropIndexedState(l.path, index)
	return l.write(items)
}

func (l *List) entries() []any {
	value, ok := getPath(l.form.values, l.path)
	if !ok {
		return nil
	}
	items, _ := value.([]any)
	return items
}

func (l *List) write(items []any) error {
	if err := setPath(l.form.values, l.path, items); err != nil {
		return err
	}
	l.form.touched[l.path] = true
	if l.form.config.Mode == ValidateOnChange {
		l.form.revalidate()
	}
	l.form.notify()
	return nil
}

// dropIndexedState rewrites touched flags and errors under listPath after the
// element at removed is deleted: state for the removed index disappears and
// state for later indices shifts down.
func (f *Form) dropIndexedState(listPath string, removed int) {
	f.touched = shiftIndexedKeys(f.touched, listPath, removed)
	if len(f.errors) > 0 {
		shifted := make(map[string][]string, len(f.errors))
		for path, messages := range f.errors {
			if next, keep := shiftIndexedPath(path, listPath, removed); keep {
				shifted[next] = messages
			}
		}
		f.errors = shifted
	}
}

func shiftIndexedKeys(flags map[string]bool, listPath string, removed int) map[string]bool {
	out := make(map[string]bool, len(flags))
	for path, value := range flags {
		if next, keep := shiftIndexedPath(path, listPath, removed); keep {
			out[next] = value
		}
	}
	return out
}

// shiftIndexedPath maps "list.N.rest" around a removal at index removed.
// Paths under the removed index are dropped; higher indices decrement.
func shiftIndexedPath(path, listPath string, removed int) (string, bool) {
	prefix := listPath + "."
	if !strings.HasPrefix(path, prefix) {
		return path, true
	}
	rest := path[len(prefix):]
	segment, tail, _ := strings.Cut(rest, ".")
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return path, true
	}
	switch {
	case idx == removed:
		return "", false
	case idx > removed:
		next := prefix + strconv.Itoa(idx-1)
		if tail != "" {
			next += "." + tail
		}
		return next, true
	default:
		return path, true
	}
}
