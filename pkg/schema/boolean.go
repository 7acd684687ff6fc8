package schema

import "strings"

// BooleanNode validates boolean values, coercing the string forms HTML
// checkboxes and switches submit ("on", "true", "1" and their negatives).
type BooleanNode struct {
	required    bool
	requiredMsg string
	mustBeTrue  bool
	trueMsg     string
	meta        []Rule
}

// Boolean starts an optional boolean schema. A missing optional boolean
// coerces to false, matching unchecked-checkbox semantics.
func Boolean() *BooleanNode {
	return &BooleanNode{}
}

func (n *BooleanNode) Kind() Kind { return KindBoolean }

func (n *BooleanNode) isRequired() bool { return n.required || n.mustBeTrue }

// Required marks the value as mandatory.
func (n *BooleanNode) Required(msg ...string) *BooleanNode {
	n.required = true
	n.requiredMsg = firstOr(MsgRequired, msg)
	n.meta = append(n.meta, ruleWith(RuleRequired, nil))
	return n
}

// MustBeTrue requires the coerced value to be true. Accept-terms checkboxes
// use this: unchecked is a validation error, not a valid false.
func (n *BooleanNode) MustBeTrue(msg ...string) *BooleanNode {
	n.mustBeTrue = true
	n.trueMsg = firstOr("Must be accepted", msg)
	n.meta = append(n.meta, ruleWith(RuleMustBeTrue, nil))
	return n
}

// Rules returns the constraint metadata for renderers.
func (n *BooleanNode) Rules() []Rule {
	return append([]Rule(nil), n.meta...)
}

func (n *BooleanNode) Validate(value any) (any, ErrorMap) {
	if absent(value) {
		if n.mustBeTrue {
			return nil, errorsAt("", n.trueMsg)
		}
		if n.required {
			return nil, errorsAt("", n.requiredMsg)
		}
		return false, nil
	}

	parsed, ok := toBool(value)
	if !ok {
		return nil, errorsAt("", "Must be true or false")
	}
	if n.mustBeTrue && !parsed {
		return nil, errorsAt("", n.trueMsg)
	}
	return parsed, nil
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true, true
		case "off", "false", "0", "no":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}
