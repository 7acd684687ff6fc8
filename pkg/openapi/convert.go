package openapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// convertObject turns an object schema into an ObjectNode. Properties are
// ordered alphabetically; OpenAPI objects carry no declaration order once
// parsed into a map.
func convertObject(ref *openapi3.SchemaRef) (*schema.ObjectNode, error) {
	if ref == nil || ref.Value == nil {
		return schema.Object(), nil
	}
	src := ref.Value

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		node, err := convertNode(src.Properties[name], required[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		fields = append(fields, schema.Field{Name: name, Node: node})
	}
	return schema.Object(fields...), nil
}

// convertNode maps one property schema onto a validation node. Constructs
// without a form representation (unresolved refs, null or union types)
// degrade to an optional string field so the rest of the operation still
// imports.
func convertNode(ref *openapi3.SchemaRef, required bool) (schema.Node, error) {
	if ref == nil || ref.Value == nil {
		return fallbackString(required), nil
	}
	src := ref.Value

	switch schemaType(src) {
	case "string":
		switch src.Format {
		case "date":
			return convertDate(src, required, false), nil
		case "date-time":
			return convertDate(src, required, true), nil
		default:
			return convertString(src, required), nil
		}
	case "number", "integer":
		return convertNumber(src, required), nil
	case "boolean":
		node := schema.Boolean()
		if required {
			node.Required()
		}
		return node, nil
	case "object":
		return convertObject(ref)
	case "array":
		element, err := convertNode(src.Items, false)
		if err != nil {
			return nil, err
		}
		node := schema.Array(element)
		if src.MinItems > 0 {
			node.MinItems(int(src.MinItems))
		}
		return node, nil
	default:
		return fallbackString(required), nil
	}
}

func fallbackString(required bool) schema.Node {
	node := schema.String()
	if required {
		node.Required()
	}
	return node
}

func convertString(src *openapi3.Schema, required bool) schema.Node {
	node := schema.String()
	if required {
		node.Required()
	}
	if src.Format == "email" {
		node.Email()
	}
	if src.MinLength > 0 {
		node.MinLen(int(src.MinLength))
	}
	if src.MaxLength != nil {
		node.MaxLen(int(*src.MaxLength))
	}
	if src.Pattern != "" {
		node.Pattern(src.Pattern)
	}
	if options := enumStrings(src.Enum); len(options) > 0 {
		node.OneOf(options)
	}
	return node
}

func convertNumber(src *openapi3.Schema, required bool) schema.Node {
	var node *schema.NumberNode
	if schemaType(src) == "integer" {
		node = schema.Integer()
	} else {
		node = schema.Number()
	}
	if required {
		node.Required()
	}
	if src.Min != nil {
		if *src.Min == 0 && src.ExclusiveMin {
			node.Positive()
		} else {
			node.Min(*src.Min)
		}
	}
	if src.Max != nil {
		node.Max(*src.Max)
	}
	return node
}

func convertDate(src *openapi3.Schema, required, withTime bool) schema.Node {
	var node *schema.DateNode
	if withTime {
		node = schema.DateTime()
	} else {
		node = schema.Date()
	}
	if required {
		node.Required()
	}
	if raw, ok := src.Extensions["x-not-after"].(string); ok {
		if bound, err := time.Parse(schema.DateLayout, raw); err == nil {
			node.NotAfter(bound)
		}
	}
	return node
}

func schemaType(src *openapi3.Schema) string {
	if src.Type == nil {
		return ""
	}
	values := src.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func enumStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
