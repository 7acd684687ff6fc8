package schema

import (
	"strings"
	"time"
)

// DateLayout is the wire format date inputs submit.
const DateLayout = "2006-01-02"

// DateTimeLayout is the wire format datetime-local inputs submit.
const DateTimeLayout = "2006-01-02T15:04"

// DateNode validates date values, accepting time.Time directly or parsing
// the HTML date/datetime input formats plus RFC 3339 strings. The coerced
// value is always a time.Time.
type DateNode struct {
	required    bool
	requiredMsg string
	withTime    bool
	notAfter    *time.Time
	notAfterMsg string
	meta        []Rule
}

// Date starts an optional date schema (day precision on the wire).
func Date() *DateNode {
	return &DateNode{}
}

// DateTime starts an optional date schema with time-of-day precision.
func DateTime() *DateNode {
	return &DateNode{withTime: true}
}

func (n *DateNode) Kind() Kind { return KindDate }

// WithTime reports whether the node expects time-of-day precision.
func (n *DateNode) WithTime() bool { return n.withTime }

func (n *DateNode) isRequired() bool { return n.required }

// Required marks the value as mandatory.
func (n *DateNode) Required(msg ...string) *DateNode {
	n.required = true
	n.requiredMsg = firstOr(MsgRequired, msg)
	n.meta = append(n.meta, ruleWith(RuleRequired, nil))
	return n
}

// NotAfter rejects dates later than the bound.
func (n *DateNode) NotAfter(bound time.Time, msg ...string) *DateNode {
	n.notAfter = &bound
	n.notAfterMsg = firstOr("Date is too late", msg)
	n.meta = append(n.meta, ruleWith(RuleNotAfter, map[string]string{"value": bound.Format(DateLayout)}))
	return n
}

// Rules returns the constraint metadata for renderers.
func (n *DateNode) Rules() []Rule {
	return append([]Rule(nil), n.meta...)
}

func (n *DateNode) Validate(value any) (any, ErrorMap) {
	if absent(value) {
		if n.required {
			return nil, errorsAt("", n.requiredMsg)
		}
		return nil, nil
	}

	parsed, ok := n.toTime(value)
	if !ok {
		return nil, errorsAt("", "Invalid date")
	}
	if n.notAfter != nil && parsed.After(*n.notAfter) {
		return nil, errorsAt("", n.notAfterMsg)
	}
	return parsed, nil
}

func (n *DateNode) toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		layouts := []string{DateLayout, DateTimeLayout, time.RFC3339}
		if n.withTime {
			layouts = []string{DateTimeLayout, time.RFC3339, DateLayout}
		}
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
