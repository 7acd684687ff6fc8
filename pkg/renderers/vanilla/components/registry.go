// Package components holds the control-level renderers the vanilla HTML
// backend composes into full forms: one renderer per widget name (input,
// select, checkbox, repeater, ...). Callers can register replacements or
// additions without forking the field pipeline.
package components

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formkit/pkg/model"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
)

// Renderer is the contract component renderers satisfy. Implementations
// receive the field plus binding data and write the control's HTML into buf.
type Renderer func(buf *bytes.Buffer, field model.Field, data ComponentData) error

// ComponentData carries the per-field binding a component needs: the dotted
// input path, the current value, the gated error messages, and helpers.
type ComponentData struct {
	// Path is the dotted input name ("workHistories.0.company").
	Path string
	// Value is the current value bound at Path, nil when unset.
	Value any
	// Errors holds display-ready messages for Path.
	Errors []string
	// Values is the full value bag, for components that bind children.
	Values map[string]any
	// AllErrors is the full error map, for components that bind children.
	AllErrors map[string][]string
	// Template renders shared partials when a component needs one.
	Template rendertemplate.TemplateRenderer
	// RenderChild renders a nested field at a child path (repeater entries,
	// fieldset members).
	RenderChild func(field model.Field, path string) (string, error)
}

// Registry tracks component renderers keyed by widget name.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Renderer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{components: make(map[string]Renderer)}
}

// Register associates a renderer with a widget name, replacing any existing
// entry.
func (r *Registry) Register(name string, renderer Renderer) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = renderer
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, renderer Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// Lookup fetches a renderer by widget name.
func (r *Registry) Lookup(name string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.components[strings.ToLower(strings.TrimSpace(name))]
	return renderer, ok
}

// Names returns the registered widget names, unsorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	return names
}
