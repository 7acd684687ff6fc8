package schema

import "fmt"

// ArrayNode validates an ordered sequence where every element shares one
// sub-schema. Elements validate independently of their siblings; errors are
// keyed by index plus the element's own path ("0.company").
type ArrayNode struct {
	element  Node
	minItems int
	minMsg   string
	meta     []Rule
}

// Array builds an array schema over the shared element node.
func Array(element Node) *ArrayNode {
	return &ArrayNode{element: element}
}

func (n *ArrayNode) Kind() Kind { return KindArray }

// Element returns the shared element sub-schema.
func (n *ArrayNode) Element() Node { return n.element }

// MinItems requires at least count elements.
func (n *ArrayNode) MinItems(count int, msg ...string) *ArrayNode {
	n.minItems = count
	n.minMsg = firstOr(fmt.Sprintf("Must have at least %d entries", count), msg)
	n.meta = append(n.meta, ruleWith(RuleMinItems, map[string]string{"value": fmt.Sprint(count)}))
	return n
}

// Rules returns the constraint metadata for renderers.
func (n *ArrayNode) Rules() []Rule {
	return append([]Rule(nil), n.meta...)
}

func (n *ArrayNode) Validate(value any) (any, ErrorMap) {
	var items []any
	switch v := value.(type) {
	case nil:
	case []any:
		items = v
	case []map[string]any:
		items = make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
	default:
		return nil, errorsAt("", "Must be a list")
	}

	if len(items) < n.minItems {
		return nil, errorsAt("", n.minMsg)
	}

	errs := make(ErrorMap)
	coerced := make([]any, 0, len(items))
	for i, item := range items {
		typed, itemErrs := n.element.Validate(item)
		if len(itemErrs) > 0 {
			errs.MergeAt(indexPath(i), itemErrs)
			continue
		}
		coerced = append(coerced, typed)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}
