package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/schema"
)

var errSchemaMissing = errors.New("model builder: schema is required")

// Options configures the Builder. The public adapter in pkg/model constructs
// these and passes them to New.
type Options struct {
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{Labeler: DefaultLabeler}
}

// Definition describes the form a schema backs: identity, submission target,
// and display copy.
type Definition struct {
	ID          string
	Action      string
	Method      string
	Title       string
	Description string
	Schema      *schema.ObjectNode
}

// Builder converts schema trees into renderer-facing form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms a form definition into a FormModel. Field order follows
// schema declaration order; widgets default per node kind and constraint
// metadata flows into Field.Validations so renderers can emit matching HTML
// attributes.
func (b *Builder) Build(def Definition) (FormModel, error) {
	if def.Schema == nil {
		return FormModel{}, errSchemaMissing
	}
	if def.ID == "" {
		return FormModel{}, errors.New("model builder: form id is required")
	}

	method := strings.ToUpper(def.Method)
	if method == "" {
		method = "POST"
	}

	form := FormModel{
		ID:          def.ID,
		Action:      def.Action,
		Method:      method,
		Title:       def.Title,
		Description: def.Description,
	}

	fields, err := b.fieldsFromObject(def.Schema)
	if err != nil {
		return FormModel{}, err
	}
	form.Fields = fields
	return form, nil
}

func (b *Builder) fieldsFromObject(node *schema.ObjectNode) ([]Field, error) {
	members := node.Fields()
	fields := make([]Field, 0, len(members))
	for _, member := range members {
		field, err := b.fieldFromNode(member.Name, member.Node)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (b *Builder) fieldFromNode(name string, node schema.Node) (Field, error) {
	field := Field{
		Name:        name,
		Label:       b.opts.Labeler(name),
		Validations: schema.RulesOf(node),
		Required:    hasRule(node, schema.RuleRequired) || hasRule(node, schema.RuleMustBeTrue),
	}

	switch n := node.(type) {
	case *schema.StringNode:
		field.Type = FieldTypeString
		if options := n.Options(); len(options) > 0 {
			field.Enum = options
			setWidget(&field, WidgetSelect)
		} else if hasRule(node, schema.RuleEmail) {
			field.Format = "email"
			setWidget(&field, WidgetInput)
		} else {
			setWidget(&field, WidgetInput)
		}

	case *schema.NumberNode:
		if n.Kind() == schema.KindInteger {
			field.Type = FieldTypeInteger
		} else {
			field.Type = FieldTypeNumber
		}
		setWidget(&field, WidgetInput)

	case *schema.BooleanNode:
		field.Type = FieldTypeBoolean
		setWidget(&field, WidgetCheckbox)

	case *schema.DateNode:
		field.Type = FieldTypeDate
		if n.WithTime() {
			field.Format = "date-time"
			setWidget(&field, WidgetDateTimePicker)
		} else {
			field.Format = "date"
			setWidget(&field, WidgetDatePicker)
		}

	case *schema.ObjectNode:
		field.Type = FieldTypeObject
		nested, err := b.fieldsFromObject(n)
		if err != nil {
			return Field{}, err
		}
		field.Nested = nested
		setWidget(&field, WidgetFieldset)

	case *schema.ArrayNode:
		field.Type = FieldTypeArray
		item, err := b.fieldFromNode(name, n.Element())
		if err != nil {
			return Field{}, err
		}
		item.Name = ""
		item.Label = ""
		field.Items = &item
		setWidget(&field, WidgetRepeater)

	default:
		return Field{}, fmt.Errorf("model builder: unsupported node %T for field %q", node, name)
	}

	return field, nil
}

func setWidget(field *Field, widget string) {
	if field.Metadata == nil {
		field.Metadata = make(map[string]string, 1)
	}
	field.Metadata["widget"] = widget
}

func hasRule(node schema.Node, kind string) bool {
	for _, rule := range schema.RulesOf(node) {
		if rule.Kind == kind {
			return true
		}
	}
	return false
}
