package schema

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// Default messages surfaced when a rule does not carry a custom one.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Invalid email address"
)

type stringRule struct {
	check   func(string) bool
	message string
}

// StringNode validates string values. Rules are evaluated in registration
// order and every failing rule contributes a message, so a short invalid
// email can report both a length and a format problem.
type StringNode struct {
	required    bool
	requiredMsg string
	rules       []stringRule
	options     []string
	meta        []Rule
}

// String starts an optional string schema. Chain Required, Email, MinLen and
// friends to attach rules.
func String() *StringNode {
	return &StringNode{}
}

func (n *StringNode) Kind() Kind { return KindString }

func (n *StringNode) isRequired() bool { return n.required }

// Required marks the value as mandatory; a blank or missing value fails with
// msg (or the package default).
func (n *StringNode) Required(msg ...string) *StringNode {
	n.required = true
	n.requiredMsg = firstOr(MsgRequired, msg)
	n.meta = append(n.meta, ruleWith(RuleRequired, nil))
	return n
}

// Email attaches an RFC 5322 shaped address check with a stricter domain
// requirement (at least one dot, no empty labels) to match what browsers and
// backends commonly accept.
func (n *StringNode) Email(msg ...string) *StringNode {
	n.rules = append(n.rules, stringRule{
		check:   isEmailAddress,
		message: firstOr(MsgInvalidEmail, msg),
	})
	n.meta = append(n.meta, ruleWith(RuleEmail, nil))
	return n
}

// MinLen requires at least count characters.
func (n *StringNode) MinLen(count int, msg ...string) *StringNode {
	n.rules = append(n.rules, stringRule{
		check:   func(s string) bool { return len([]rune(s)) >= count },
		message: firstOr(fmt.Sprintf("Must be at least %d characters", count), msg),
	})
	n.meta = append(n.meta, ruleWith(RuleMinLength, map[string]string{"value": fmt.Sprint(count)}))
	return n
}

// MaxLen requires at most count characters.
func (n *StringNode) MaxLen(count int, msg ...string) *StringNode {
	n.rules = append(n.rules, stringRule{
		check:   func(s string) bool { return len([]rune(s)) <= count },
		message: firstOr(fmt.Sprintf("Must be at most %d characters", count), msg),
	})
	n.meta = append(n.meta, ruleWith(RuleMaxLength, map[string]string{"value": fmt.Sprint(count)}))
	return n
}

// Pattern requires the value to match the compiled expression. The pattern is
// compiled eagerly; an invalid expression panics at schema construction time,
// never during validation.
func (n *StringNode) Pattern(expr string, msg ...string) *StringNode {
	re := regexp.MustCompile(expr)
	n.rules = append(n.rules, stringRule{
		check:   re.MatchString,
		message: firstOr("Invalid format", msg),
	})
	n.meta = append(n.meta, ruleWith(RulePattern, map[string]string{"pattern": expr}))
	return n
}

// OneOf restricts the value to the given options. The options double as enum
// metadata for renderers (selects, radio groups).
func (n *StringNode) OneOf(options []string, msg ...string) *StringNode {
	n.options = append([]string(nil), options...)
	n.rules = append(n.rules, stringRule{
		check: func(s string) bool {
			for _, option := range options {
				if s == option {
					return true
				}
			}
			return false
		},
		message: firstOr("Must be one of: "+strings.Join(options, ", "), msg),
	})
	n.meta = append(n.meta, ruleWith(RuleOneOf, map[string]string{"options": strings.Join(options, ",")}))
	return n
}

// Rules returns the constraint metadata for renderers.
func (n *StringNode) Rules() []Rule {
	return append([]Rule(nil), n.meta...)
}

// Options returns the OneOf members, if any.
func (n *StringNode) Options() []string {
	return append([]string(nil), n.options...)
}

func (n *StringNode) Validate(value any) (any, ErrorMap) {
	if absent(value) {
		if n.required {
			return nil, errorsAt("", n.requiredMsg)
		}
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, errorsAt("", "Must be text")
	}

	var errs ErrorMap
	for _, rule := range n.rules {
		if !rule.check(s) {
			if errs == nil {
				errs = make(ErrorMap)
			}
			errs.Add("", rule.message)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func isEmailAddress(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}
	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}
	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

func firstOr(fallback string, msgs []string) string {
	if len(msgs) > 0 && strings.TrimSpace(msgs[0]) != "" {
		return msgs[0]
	}
	return fallback
}
