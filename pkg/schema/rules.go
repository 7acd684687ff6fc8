package schema

// Canonical rule identifiers surfaced to renderers so constraints can map
// onto HTML attributes (minlength, pattern, min/max) or prompt validators.
const (
	RuleRequired   = "required"
	RuleEmail      = "email"
	RuleMinLength  = "minLength"
	RuleMaxLength  = "maxLength"
	RulePattern    = "pattern"
	RuleMin        = "min"
	RuleMax        = "max"
	RulePositive   = "positive"
	RuleOneOf      = "oneOf"
	RuleMustBeTrue = "mustBeTrue"
	RuleNotAfter   = "notAfter"
	RuleMinItems   = "minItems"
)

// Rule is the renderer-facing record of a constraint attached to a leaf
// node. Thresholds are encoded as string params ("value", "pattern") to keep
// serialised form models stable.
type Rule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// ruled is implemented by leaf nodes that surface their constraint metadata.
type ruled interface {
	Rules() []Rule
}

// RulesOf returns the constraint metadata for a node, or nil for composites.
func RulesOf(node Node) []Rule {
	if r, ok := node.(ruled); ok {
		return r.Rules()
	}
	return nil
}

func ruleWith(kind string, params map[string]string) Rule {
	return Rule{Kind: kind, Params: params}
}
