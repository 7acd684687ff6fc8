package uischema

import (
	"github.com/goliatone/go-formkit/pkg/model"
)

// Decorator returns a model decorator that applies the stored hints for the
// given form id. The second return reports whether hints exist; callers can
// skip decoration entirely when they don't.
func (s *Store) Decorator(id string) (model.Decorator, bool) {
	hints, ok := s.Form(id)
	if !ok {
		return nil, false
	}

	return model.DecoratorFunc(func(form *model.FormModel) error {
		if form == nil {
			return nil
		}
		applyFormConfig(form, hints.Form)
		for i := range form.Fields {
			applyFieldHints(&form.Fields[i], form.Fields[i].Name, hints.Fields)
		}
		return nil
	}), true
}

func applyFormConfig(form *model.FormModel, cfg FormConfig) {
	if cfg.Title != "" {
		form.Title = cfg.Title
	}
	if cfg.Description != "" {
		form.Description = cfg.Description
	}
	for key, value := range cfg.Metadata {
		if form.Metadata == nil {
			form.Metadata = make(map[string]string, len(cfg.Metadata))
		}
		form.Metadata[key] = value
	}
}

// applyFieldHints walks the field tree matching normalized hint paths:
// nested object members extend the path with ".name", repeater elements
// with ".items".
func applyFieldHints(field *model.Field, path string, configs map[string]FieldConfig) {
	if cfg, ok := configs[path]; ok {
		applyFieldConfig(field, cfg)
	}
	for i := range field.Nested {
		applyFieldHints(&field.Nested[i], path+"."+field.Nested[i].Name, configs)
	}
	if field.Items != nil {
		applyFieldHints(field.Items, path+".items", configs)
	}
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Description != "" {
		field.Description = cfg.Description
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}

	ensureHints := func() {
		if field.UIHints == nil {
			field.UIHints = make(map[string]string)
		}
	}
	if cfg.Widget != "" {
		ensureHints()
		field.UIHints["widget"] = cfg.Widget
	}
	if cfg.Icon != "" {
		ensureHints()
		field.UIHints["icon"] = cfg.Icon
	}
	for key, value := range cfg.UIHints {
		ensureHints()
		field.UIHints[key] = value
	}
}
