// Package form provides the state container backing a single form instance:
// current values addressed by dotted path, per-field touched flags, the
// current validation error map, and the submit/reset lifecycle. A Form is
// owned by one caller and mutated only inside that caller's own event
// handlers; nothing here is safe for concurrent use and nothing needs to be.
package form

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// Mode selects when validation runs relative to value changes.
type Mode int

const (
	// ValidateOnSubmit defers validation until Submit. Errors surface all at
	// once, matching classic server-roundtrip forms.
	ValidateOnSubmit Mode = iota
	// ValidateOnChange re-validates the whole schema after every Set so the
	// error map tracks the keystroke.
	ValidateOnChange
)

// SubmitFunc receives the coerced value bag after a successful validation
// pass. It is invoked exactly once per valid Submit.
type SubmitFunc func(values map[string]any)

// Config wires a Form to its schema and submit callback.
type Config struct {
	Schema   *schema.ObjectNode
	Mode     Mode
	OnSubmit SubmitFunc
}

// Form is the state container for one mounted form instance.
type Form struct {
	config    Config
	initial   map[string]any
	values    map[string]any
	touched   map[string]bool
	errors    schema.ErrorMap
	submitted bool

	listeners map[int]func()
	nextID    int
}

// New constructs a Form seeded with a deep copy of the initial values.
func New(initial map[string]any, config Config) (*Form, error) {
	if config.Schema == nil {
		return nil, fmt.Errorf("form: config requires a schema")
	}
	return &Form{
		config:    config,
		initial:   deepCopyBag(initial),
		values:    deepCopyBag(initial),
		touched:   make(map[string]bool),
		listeners: make(map[int]func()),
	}, nil
}

// Values returns a deep copy of the current value bag.
func (f *Form) Values() map[string]any {
	return deepCopyBag(f.values)
}

// Get resolves the current value at a dotted path.
func (f *Form) Get(path string) (any, bool) {
	return getPath(f.values, path)
}

// Set writes a value, marks the path touched, and in ValidateOnChange mode
// rebuilds the error map. Subscribers are notified afterwards.
func (f *Form) Set(path string, value any) error {
	if err := setPath(f.values, path, value); err != nil {
		return err
	}
	f.touched[path] = true
	if f.config.Mode == ValidateOnChange {
		f.revalidate()
	}
	f.notify()
	return nil
}

// Touched reports whether the path has been written since mount or the last
// Reset.
func (f *Form) Touched(path string) bool {
	return f.touched[path]
}

// Dirty reports whether any field has been touched.
func (f *Form) Dirty() bool {
	return len(f.touched) > 0
}

// Submitted reports whether a Submit has run since the last Reset.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Errors returns the full error map from the most recent validation pass.
func (f *Form) Errors() schema.ErrorMap {
	return f.errors
}

// VisibleErrors gates the error map for display: before the first Submit only
// touched paths surface their messages, afterwards everything does. Pristine
// fields never show errors.
func (f *Form) VisibleErrors() schema.ErrorMap {
	if len(f.errors) == 0 {
		return nil
	}
	if f.submitted {
		return f.errors
	}
	visible := make(schema.ErrorMap)
	for path, messages := range f.errors {
		if !f.touched[path] {
			continue
		}
		for _, message := range messages {
			visible.Add(path, message)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	return visible
}

// FieldState describes where a field sits in its display lifecycle.
type FieldState int

const (
	Pristine FieldState = iota
	Touched
	Valid
	Invalid
)

// State reports the display state for a path: Pristine until written, then
// Touched until a validation pass has run, then Valid or Invalid. A field
// returns to Pristine only through Reset.
func (f *Form) State(path string) FieldState {
	if !f.touched[path] && !f.submitted {
		return Pristine
	}
	if f.errors == nil {
		if f.config.Mode == ValidateOnSubmit && !f.submitted {
			return Touched
		}
		return Valid
	}
	if f.errors.Has(path) {
		return Invalid
	}
	return Valid
}

// Submit runs full schema validation. On success the submit callback receives
// the coerced bag and the form resets to its initial values; on failure the
// error map is stored, the form is flagged submitted, and the callback is not
// invoked. The returned map is nil exactly when submission succeeded.
func (f *Form) Submit() schema.ErrorMap {
	typed, errs := f.config.Schema.Validate(f.values)
	if len(errs) > 0 {
		f.errors = errs
		f.submitted = true
		f.notify()
		return errs
	}

	bag, _ := typed.(map[string]any)
	if f.config.OnSubmit != nil {
		f.config.OnSubmit(bag)
	}
	f.Reset()
	return nil
}

// Validate rebuilds the error map without the submit side effects.
func (f *Form) Validate() schema.ErrorMap {
	f.revalidate()
	f.notify()
	return f.errors
}

// Reset restores the given values (or the initial bag when omitted) and
// clears errors, touched flags, and the submitted flag.
func (f *Form) Reset(values ...map[string]any) {
	if len(values) > 0 {
		f.values = deepCopyBag(values[0])
	} else {
		f.values = deepCopyBag(f.initial)
	}
	f.errors = nil
	f.touched = make(map[string]bool)
	f.submitted = false
	f.notify()
}

// Subscribe registers a change listener fired after every Set, Submit,
// Validate, and Reset. The returned func unsubscribes.
func (f *Form) Subscribe(listener func()) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = listener
	return func() { delete(f.listeners, id) }
}

func (f *Form) revalidate() {
	_, errs := f.config.Schema.Validate(f.values)
	if len(errs) == 0 {
		f.errors = nil
		return
	}
	f.errors = errs
}

func (f *Form) notify() {
	for _, listener := range f.listeners {
		if listener != nil {
			listener()
		}
	}
}
