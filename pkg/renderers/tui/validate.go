package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// validatorFor reconstructs a leaf schema node from the field's constraint
// metadata so prompts re-check answers inline, before submission.
func validatorFor(field model.Field) func(string) error {
	node := leafNode(field)
	if node == nil {
		return nil
	}
	return func(answer string) error {
		_, errs := node.Validate(answer)
		if msg := errs.First(""); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func leafNode(field model.Field) schema.Node {
	switch field.Type {
	case model.FieldTypeNumber, model.FieldTypeInteger:
		return numberNode(field)
	case model.FieldTypeDate:
		return dateNode(field)
	case model.FieldTypeString:
		return stringNode(field)
	default:
		return nil
	}
}

func stringNode(field model.Field) schema.Node {
	node := schema.String()
	for _, rule := range field.Validations {
		switch rule.Kind {
		case schema.RuleRequired:
			node.Required()
		case schema.RuleEmail:
			node.Email()
		case schema.RuleMinLength:
			if count, err := strconv.Atoi(rule.Params["value"]); err == nil {
				node.MinLen(count)
			}
		case schema.RuleMaxLength:
			if count, err := strconv.Atoi(rule.Params["value"]); err == nil {
				node.MaxLen(count)
			}
		case schema.RulePattern:
			if expr := rule.Params["pattern"]; expr != "" {
				node.Pattern(expr)
			}
		}
	}
	return node
}

func numberNode(field model.Field) schema.Node {
	var node *schema.NumberNode
	if field.Type == model.FieldTypeInteger {
		node = schema.Integer()
	} else {
		node = schema.Number()
	}
	for _, rule := range field.Validations {
		switch rule.Kind {
		case schema.RuleRequired:
			node.Required()
		case schema.RuleMin:
			if bound, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil {
				node.Min(bound)
			}
		case schema.RuleMax:
			if bound, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil {
				node.Max(bound)
			}
		case schema.RulePositive:
			node.Positive()
		}
	}
	return node
}

func dateNode(field model.Field) schema.Node {
	var node *schema.DateNode
	if field.Format == "date-time" {
		node = schema.DateTime()
	} else {
		node = schema.Date()
	}
	for _, rule := range field.Validations {
		switch rule.Kind {
		case schema.RuleRequired:
			node.Required()
		case schema.RuleNotAfter:
			if bound, err := time.Parse(schema.DateLayout, rule.Params["value"]); err == nil {
				node.NotAfter(bound)
			}
		}
	}
	return node
}
