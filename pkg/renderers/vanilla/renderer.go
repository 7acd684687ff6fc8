// Package vanilla renders form models as dependency-free HTML: native
// controls, class hooks for styling, and a small runtime script for repeater
// and textarea behaviour.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla/components"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponents replaces the default component registry, letting callers
// swap or extend the per-widget renderers.
func WithComponents(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, components: cfg.components}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render walks the form model top to bottom, rendering each field through its
// widget component, then hands the assembled pieces to the form template.
func (r *Renderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	mapping := render.MapErrors(form, options.Errors)
	bound := options
	bound.Errors = mapping.Fields

	fr := newFieldRenderer(r.components, r.templates, bound)
	fields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		markup, err := fr.render(field, field.Name)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: field %q: %w", field.Name, err)
		}
		fields = append(fields, markup)
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form":       form,
		"fields":     fields,
		"hidden":     render.SortedHiddenFields(options.Hidden),
		"formErrors": mapping.Form,
		"submitted":  options.Submitted,
		"themeStyle": themeStyle(options.Theme),
		"classes": map[string]string{
			"form":       classForm,
			"formErrors": classFormErrors,
			"submit":     classSubmit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
