package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type numberRule struct {
	check   func(float64) bool
	message string
}

// NumberNode validates numeric values. Form input arrives as strings, so the
// node coerces "50000" (and "50000.5") into float64 before applying rules.
type NumberNode struct {
	required    bool
	requiredMsg string
	integer     bool
	rules       []numberRule
	meta        []Rule
}

// Number starts an optional floating-point schema.
func Number() *NumberNode {
	return &NumberNode{}
}

// Integer starts an optional integer schema. Coerced values are returned as
// int64.
func Integer() *NumberNode {
	return &NumberNode{integer: true}
}

func (n *NumberNode) Kind() Kind {
	if n.integer {
		return KindInteger
	}
	return KindNumber
}

func (n *NumberNode) isRequired() bool { return n.required }

// Required marks the value as mandatory.
func (n *NumberNode) Required(msg ...string) *NumberNode {
	n.required = true
	n.requiredMsg = firstOr(MsgRequired, msg)
	n.meta = append(n.meta, ruleWith(RuleRequired, nil))
	return n
}

// Min requires value >= bound.
func (n *NumberNode) Min(bound float64, msg ...string) *NumberNode {
	n.rules = append(n.rules, numberRule{
		check:   func(v float64) bool { return v >= bound },
		message: firstOr(fmt.Sprintf("Must be at least %v", bound), msg),
	})
	n.meta = append(n.meta, ruleWith(RuleMin, map[string]string{"value": strconv.FormatFloat(bound, 'f', -1, 64)}))
	return n
}

// Max requires value <= bound.
func (n *NumberNode) Max(bound float64, msg ...string) *NumberNode {
	n.rules = append(n.rules, numberRule{
		check:   func(v float64) bool { return v <= bound },
		message: firstOr(fmt.Sprintf("Must be at most %v", bound), msg),
	})
	n.meta = append(n.meta, ruleWith(RuleMax, map[string]string{"value": strconv.FormatFloat(bound, 'f', -1, 64)}))
	return n
}

// Positive requires value > 0.
func (n *NumberNode) Positive(msg ...string) *NumberNode {
	n.rules = append(n.rules, numberRule{
		check:   func(v float64) bool { return v > 0 },
		message: firstOr("Must be greater than 0", msg),
	})
	n.meta = append(n.meta, ruleWith(RulePositive, nil))
	return n
}

// Rules returns the constraint metadata for renderers.
func (n *NumberNode) Rules() []Rule {
	return append([]Rule(nil), n.meta...)
}

func (n *NumberNode) Validate(value any) (any, ErrorMap) {
	if absent(value) {
		if n.required {
			return nil, errorsAt("", n.requiredMsg)
		}
		return nil, nil
	}

	parsed, ok := toFloat(value)
	if !ok {
		return nil, errorsAt("", "Must be a number")
	}
	if n.integer && parsed != math.Trunc(parsed) {
		return nil, errorsAt("", "Must be a whole number")
	}

	var errs ErrorMap
	for _, rule := range n.rules {
		if !rule.check(parsed) {
			if errs == nil {
				errs = make(ErrorMap)
			}
			errs.Add("", rule.message)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if n.integer {
		return int64(parsed), nil
	}
	return parsed, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
