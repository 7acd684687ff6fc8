package schema

// Field pairs a name with the node validating that member of an object.
// Declaration order is preserved so renderers can lay fields out as authored.
type Field struct {
	Name string
	Node Node
}

// Refinement is a cross-field predicate evaluated against the fully coerced
// bag after all structural rules pass. When the predicate returns false the
// message is attached to Path. Attaching to a single designated path is
// deliberate: the error belongs to the field the user must fix.
type Refinement struct {
	Path    string
	Message string
	Check   func(bag map[string]any) bool
}

// ObjectNode validates a map of named members against per-field nodes and
// then runs any registered refinements.
type ObjectNode struct {
	fields      []Field
	refinements []Refinement
}

// Object builds an object schema from ordered fields.
func Object(fields ...Field) *ObjectNode {
	return &ObjectNode{fields: append([]Field(nil), fields...)}
}

func (n *ObjectNode) Kind() Kind { return KindObject }

// Fields returns the ordered member list.
func (n *ObjectNode) Fields() []Field {
	return append([]Field(nil), n.fields...)
}

// Lookup resolves a direct member by name.
func (n *ObjectNode) Lookup(name string) (Node, bool) {
	for _, field := range n.fields {
		if field.Name == name {
			return field.Node, true
		}
	}
	return nil, false
}

// Refine registers a cross-field rule. The predicate receives the coerced bag
// and reports whether it holds; on failure message lands on path.
func (n *ObjectNode) Refine(path, message string, check func(bag map[string]any) bool) *ObjectNode {
	n.refinements = append(n.refinements, Refinement{Path: path, Message: message, Check: check})
	return n
}

// Merge returns the intersection of two object schemas: the combined field
// set (other wins on name collisions) and the union of both refinement sets.
func (n *ObjectNode) Merge(other *ObjectNode) *ObjectNode {
	if other == nil {
		return Object(n.fields...).withRefinements(n.refinements)
	}

	merged := make([]Field, 0, len(n.fields)+len(other.fields))
	seen := make(map[string]int, len(n.fields))
	for _, field := range n.fields {
		seen[field.Name] = len(merged)
		merged = append(merged, field)
	}
	for _, field := range other.fields {
		if idx, exists := seen[field.Name]; exists {
			merged[idx] = field
			continue
		}
		seen[field.Name] = len(merged)
		merged = append(merged, field)
	}

	combined := append([]Refinement(nil), n.refinements...)
	combined = append(combined, other.refinements...)
	return Object(merged...).withRefinements(combined)
}

func (n *ObjectNode) withRefinements(refinements []Refinement) *ObjectNode {
	n.refinements = append([]Refinement(nil), refinements...)
	return n
}

// Validate checks every member and, when the structural pass is clean, runs
// refinements against the coerced bag. A nil value validates as an empty
// object so required members report individually instead of one opaque
// "not an object" failure.
func (n *ObjectNode) Validate(value any) (any, ErrorMap) {
	bag, ok := toBag(value)
	if !ok {
		return nil, errorsAt("", "Must be an object")
	}

	errs := make(ErrorMap)
	coerced := make(map[string]any, len(n.fields))

	for _, field := range n.fields {
		raw, present := bag[field.Name]
		if !present {
			raw = nil
		}
		typed, fieldErrs := field.Node.Validate(raw)
		if len(fieldErrs) > 0 {
			errs.MergeAt(field.Name, fieldErrs)
			continue
		}
		if typed != nil {
			coerced[field.Name] = typed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	for _, refinement := range n.refinements {
		if refinement.Check == nil || refinement.Check(coerced) {
			continue
		}
		errs.Add(refinement.Path, refinement.Message)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}

func toBag(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}
