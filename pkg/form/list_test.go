package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
)

func historyFormSchema() *schema.ObjectNode {
	return schema.Object(
		schema.Field{Name: "name", Node: schema.String().Required()},
		schema.Field{Name: "workHistories", Node: schema.Array(schema.Object(
			schema.Field{Name: "company", Node: schema.String().Required()},
			schema.Field{Name: "position", Node: schema.String().Required()},
		))},
	)
}

func blankEntry() map[string]any {
	return map[string]any{"company": "", "position": ""}
}

func TestListAppendAndLen(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema()})
	if err != nil {
		t.Fatal(err)
	}

	list := f.List("workHistories")
	if list.Len() != 0 {
		t.Fatalf("expected empty list, got %d", list.Len())
	}

	if err := list.Append(blankEntry()); err != nil {
		t.Fatal(err)
	}
	if err := list.Append(map[string]any{"company": "Acme", "position": "Engineer"}); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", list.Len())
	}

	value, _ := f.Get("workHistories.1.company")
	if value != "Acme" {
		t.Fatalf("expected appended entry at index 1, got %#v", value)
	}
}

func TestListRemoveShiftsIndices(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema()})
	if err != nil {
		t.Fatal(err)
	}
	list := f.List("workHistories")
	for _, company := range []string{"First", "Second", "Third"} {
		if err := list.Append(map[string]any{"company": company, "position": "Engineer"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := list.Remove(1); err != nil {
		t.Fatal(err)
	}

	want := []any{
		map[string]any{"company": "First", "position": "Engineer"},
		map[string]any{"company": "Third", "position": "Engineer"},
	}
	if diff := cmp.Diff(want, list.Entries()); diff != "" {
		t.Fatalf("list mismatch after remove (-want +got):\n%s", diff)
	}
}

func TestListRemoveOutOfRange(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema()})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.List("workHistories").Remove(0); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestListAppendThenRemoveRestoresPriorList(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema()})
	if err != nil {
		t.Fatal(err)
	}
	list := f.List("workHistories")
	if err := list.Append(map[string]any{"company": "Acme", "position": "Engineer"}); err != nil {
		t.Fatal(err)
	}
	before := list.Entries()

	if err := list.Append(blankEntry()); err != nil {
		t.Fatal(err)
	}
	if err := list.Remove(1); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(before, list.Entries()); diff != "" {
		t.Fatalf("append+remove should restore the prior list (-want +got):\n%s", diff)
	}
}

func TestListRemoveShiftsErrorPaths(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema(), Mode: ValidateOnChange})
	if err != nil {
		t.Fatal(err)
	}
	mustSet(t, f, "name", "Ada")
	list := f.List("workHistories")
	if err := list.Append(blankEntry()); err != nil {
		t.Fatal(err)
	}
	if err := list.Append(blankEntry()); err != nil {
		t.Fatal(err)
	}

	if !f.Errors().Has("workHistories.1.company") {
		t.Fatalf("expected error on second entry, got %v", f.Errors().Paths())
	}

	if err := list.Remove(0); err != nil {
		t.Fatal(err)
	}
	if !f.Errors().Has("workHistories.0.company") {
		t.Fatalf("errors should shift down after remove, got %v", f.Errors().Paths())
	}
	if f.Errors().Has("workHistories.1.company") {
		t.Fatalf("stale index must disappear, got %v", f.Errors().Paths())
	}
}

func TestListElementEdits(t *testing.T) {
	f, err := New(nil, Config{Schema: historyFormSchema(), Mode: ValidateOnChange})
	if err != nil {
		t.Fatal(err)
	}
	mustSet(t, f, "name", "Ada")
	if err := f.List("workHistories").Append(blankEntry()); err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "workHistories.0.company", "Acme")
	mustSet(t, f, "workHistories.0.position", "Engineer")

	if f.Errors().Has("workHistories.0.company") || f.Errors().Has("workHistories.0.position") {
		t.Fatalf("filled entry should validate, got %v", f.Errors().Paths())
	}
}
