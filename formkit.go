// Package formkit ties the toolkit together: build a form model from a
// schema definition, decorate it with UI hints, and render it through a
// registered backend. Submission handling folds an HTML post back into the
// state container and validates it.
package formkit

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/uischema"
)

// RenderOptions re-exports the per-request renderer options.
type RenderOptions = render.RenderOptions

// Option configures an Engine.
type Option func(*Engine)

// WithBuilder overrides the model builder.
func WithBuilder(builder model.Builder) Option {
	return func(e *Engine) {
		if builder != nil {
			e.builder = builder
		}
	}
}

// WithRegistry replaces the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithRenderer registers a renderer with the engine's registry.
func WithRenderer(renderer render.Renderer) Option {
	return func(e *Engine) {
		if renderer == nil {
			return
		}
		if err := e.registry.Register(renderer); err != nil {
			e.initErr = err
		}
	}
}

// WithDefaultRenderer selects the renderer used when a request names none.
func WithDefaultRenderer(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.defaultRenderer = name
		}
	}
}

// WithDecorator appends a model decorator; decorators run in registration
// order after the build.
func WithDecorator(decorator model.Decorator) Option {
	return func(e *Engine) {
		if decorator != nil {
			e.decorators = append(e.decorators, decorator)
		}
	}
}

// WithUISchemaFS loads UI hint documents from the filesystem; hints apply to
// forms whose id matches a loaded entry. A nil filesystem is accepted and
// loads nothing.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(e *Engine) {
		store, err := uischema.LoadFS(fsys)
		if err != nil {
			e.initErr = err
			return
		}
		e.hints = store
	}
}

// WithThemeSelector resolves the named theme before each render and passes
// the selection to the renderer.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(e *Engine) {
		e.themeSelector = selector
		e.themeName = name
		e.themeVariant = variant
	}
}

// Engine wires the model builder, decorators, and renderer registry.
type Engine struct {
	builder         model.Builder
	registry        *render.Registry
	decorators      []model.Decorator
	hints           *uischema.Store
	defaultRenderer string

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string

	initErr error
}

// New constructs an Engine with the built-in model builder and an empty
// renderer registry.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		builder:  model.NewBuilder(),
		registry: render.NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.initErr != nil {
		return nil, fmt.Errorf("formkit: %w", e.initErr)
	}
	return e, nil
}

// Registry exposes the renderer registry for direct registration.
func (e *Engine) Registry() *render.Registry {
	return e.registry
}

// BuildModel builds the renderer-facing model for a definition and applies
// UI hints and registered decorators.
func (e *Engine) BuildModel(def model.Definition) (model.FormModel, error) {
	built, err := e.builder.Build(def)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("formkit: build model: %w", err)
	}

	if e.hints != nil {
		if decorator, ok := e.hints.Decorator(def.ID); ok {
			if err := decorator.Decorate(&built); err != nil {
				return model.FormModel{}, fmt.Errorf("formkit: apply ui hints: %w", err)
			}
		}
	}
	for _, decorator := range e.decorators {
		if err := decorator.Decorate(&built); err != nil {
			return model.FormModel{}, fmt.Errorf("formkit: decorate model: %w", err)
		}
	}
	return built, nil
}

// RenderForm builds, decorates, and renders a definition in one pass.
// rendererName may be empty when a default renderer is configured.
func (e *Engine) RenderForm(ctx context.Context, def model.Definition, rendererName string, options RenderOptions) ([]byte, error) {
	built, err := e.BuildModel(def)
	if err != nil {
		return nil, err
	}
	return e.RenderModel(ctx, built, rendererName, options)
}

// RenderModel renders an already-built model.
func (e *Engine) RenderModel(ctx context.Context, built model.FormModel, rendererName string, options RenderOptions) ([]byte, error) {
	if rendererName == "" {
		rendererName = e.defaultRenderer
	}
	renderer, err := e.registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("formkit: %w", err)
	}

	if options.Theme == nil && e.themeSelector != nil {
		selection, err := e.themeSelector.Select(e.themeName, e.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("formkit: select theme: %w", err)
		}
		options.Theme = selection
	}
	return renderer.Render(ctx, built, options)
}

// SubmissionResult reports the outcome of handling a form post.
type SubmissionResult struct {
	// Values is the decoded raw value bag, suitable for re-rendering the
	// form when validation failed.
	Values map[string]any
	// Errors is nil exactly when the submission was valid.
	Errors schema.ErrorMap
}

// Valid reports whether the submission passed validation.
func (r SubmissionResult) Valid() bool {
	return r.Errors.Empty()
}

// HandleSubmission folds an HTML form post into the state container and
// submits it. On success the form's submit callback has run and the form has
// reset; on failure the result carries the error map and the raw values for
// re-rendering.
func HandleSubmission(f *form.Form, payload url.Values) (SubmissionResult, error) {
	if f == nil {
		return SubmissionResult{}, fmt.Errorf("formkit: form is required")
	}
	if err := f.Apply(payload); err != nil {
		return SubmissionResult{}, fmt.Errorf("formkit: apply payload: %w", err)
	}

	values := f.Values()
	errs := f.Submit()
	return SubmissionResult{Values: values, Errors: errs}, nil
}
