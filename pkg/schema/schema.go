// Package schema implements a composable validation rule tree. Leaf nodes
// validate and coerce primitive values (strings, numbers, booleans, dates),
// composite nodes mirror the value shape (objects, arrays), and object schemas
// support intersection via Merge plus cross-field refinements. Every node
// satisfies the same contract: Validate(value) returns either the coerced
// value or a non-empty ErrorMap keyed by dotted field paths. Validation is
// pure and synchronous; it never panics past its boundary.
package schema

// Kind identifies the variant of a schema node.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
)

// Node is the uniform contract every schema variant satisfies. Validate
// returns the coerced value and an ErrorMap; an empty (nil) map means the
// input is valid. Implementations must not mutate the input value.
type Node interface {
	Kind() Kind
	Validate(value any) (any, ErrorMap)
}

// requirable is implemented by leaf nodes that distinguish required from
// optional values. Object validation uses it to decide whether an absent
// child is an error or simply skipped.
type requirable interface {
	isRequired() bool
}

// absent reports whether a raw form value should be treated as "not provided".
// Empty strings count: HTML forms submit blank inputs rather than omitting
// the key.
func absent(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
