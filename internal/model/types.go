package model

import "github.com/goliatone/go-formkit/pkg/schema"

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Widget identifiers the built-in renderers understand. The builder assigns a
// default per field; UI schema hints can override it.
const (
	WidgetInput          = "input"
	WidgetSelect         = "select"
	WidgetCheckbox       = "checkbox"
	WidgetSwitch         = "switch"
	WidgetRadioGroup     = "radio-group"
	WidgetTextarea       = "textarea"
	WidgetDatePicker     = "date-picker"
	WidgetDateTimePicker = "datetime-picker"
	WidgetRepeater       = "repeater"
	WidgetFieldset       = "fieldset"
)

// Field models an individual input inside a form. Struct fields are annotated
// so renderers and snapshots can serialise them directly.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Nested      []Field           `json:"nested,omitempty"`
	Items       *Field            `json:"items,omitempty"`
	Validations []schema.Rule     `json:"validations,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Widget resolves the renderer widget for the field, honouring UI hint
// overrides before the builder-assigned default.
func (f Field) Widget() string {
	if hint := f.UIHints["widget"]; hint != "" {
		return hint
	}
	if w := f.Metadata["widget"]; w != "" {
		return w
	}
	return WidgetInput
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	ID          string            `json:"id"`
	Action      string            `json:"action,omitempty"`
	Method      string            `json:"method,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Decorator mutates a built form model before rendering (labels, widgets,
// placeholders). Decorators run in registration order.
type Decorator interface {
	Decorate(form *FormModel) error
}

// DecoratorFunc adapts a func to the Decorator interface.
type DecoratorFunc func(form *FormModel) error

func (fn DecoratorFunc) Decorate(form *FormModel) error { return fn(form) }
