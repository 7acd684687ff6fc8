package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func workHistorySchema() *ArrayNode {
	return Array(Object(
		Field{Name: "company", Node: String().Required()},
		Field{Name: "position", Node: String().Required()},
	))
}

func TestArrayElementsValidateIndependently(t *testing.T) {
	_, errs := workHistorySchema().Validate([]any{
		map[string]any{"company": "Acme", "position": "Engineer"},
		map[string]any{"company": "", "position": "Manager"},
	})

	if errs.Empty() {
		t.Fatal("expected errors")
	}
	if !errs.Has("1.company") {
		t.Fatalf("expected index-keyed error, got paths %v", errs.Paths())
	}
	if errs.Has("0.company") {
		t.Fatalf("first element is valid, got %#v", errs)
	}
}

func TestArrayValidElements(t *testing.T) {
	typed, errs := workHistorySchema().Validate([]any{
		map[string]any{"company": "Acme", "position": "Engineer"},
	})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %#v", errs)
	}

	want := []any{map[string]any{"company": "Acme", "position": "Engineer"}}
	if diff := cmp.Diff(want, typed); diff != "" {
		t.Fatalf("coerced list mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayNilIsEmpty(t *testing.T) {
	typed, errs := workHistorySchema().Validate(nil)
	if !errs.Empty() {
		t.Fatalf("nil list should validate as empty, got %#v", errs)
	}
	if list, ok := typed.([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty list, got %#v", typed)
	}
}

func TestArrayMinItems(t *testing.T) {
	node := workHistorySchema().MinItems(1, "Add at least one entry")
	_, errs := node.Validate(nil)
	if got := errs.First(""); got != "Add at least one entry" {
		t.Fatalf("expected min-items error, got %#v", errs)
	}
}

func TestNestedObjectWithArrayPaths(t *testing.T) {
	schema := Object(
		Field{Name: "name", Node: String().Required()},
		Field{Name: "workHistories", Node: workHistorySchema()},
	)

	_, errs := schema.Validate(map[string]any{
		"name": "Ada",
		"workHistories": []any{
			map[string]any{"company": "Acme", "position": ""},
		},
	})
	if !errs.Has("workHistories.0.position") {
		t.Fatalf("expected nested array path, got %v", errs.Paths())
	}
}
