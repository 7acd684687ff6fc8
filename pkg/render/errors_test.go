package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/model"
)

func employeeModel() model.FormModel {
	return model.FormModel{
		ID: "employee",
		Fields: []model.Field{
			{Name: "email", Type: model.FieldTypeString},
			{Name: "salary", Type: model.FieldTypeNumber},
			{Name: "workHistories", Type: model.FieldTypeArray, Items: &model.Field{
				Nested: []model.Field{
					{Name: "company", Type: model.FieldTypeString},
					{Name: "position", Type: model.FieldTypeString},
				},
			}},
		},
	}
}

func TestMapErrorsKeepsKnownPaths(t *testing.T) {
	mapping := MapErrors(employeeModel(), map[string][]string{
		"email":  {"Invalid email address"},
		"salary": {"Must be greater than 0"},
	})

	want := map[string][]string{
		"email":  {"Invalid email address"},
		"salary": {"Must be greater than 0"},
	}
	if diff := cmp.Diff(want, mapping.Fields); diff != "" {
		t.Fatalf("field mapping mismatch (-want +got):\n%s", diff)
	}
	if len(mapping.Form) != 0 {
		t.Fatalf("unexpected form-level messages: %v", mapping.Form)
	}
}

func TestMapErrorsMatchesIndexedRepeaterPaths(t *testing.T) {
	mapping := MapErrors(employeeModel(), map[string][]string{
		"workHistories.3.company": {"This field is required"},
	})

	if got := mapping.Fields["workHistories.3.company"]; len(got) != 1 {
		t.Fatalf("expected indexed path to map to a field, got %#v", mapping)
	}
}

func TestMapErrorsUnknownPathsBecomeFormLevel(t *testing.T) {
	mapping := MapErrors(employeeModel(), map[string][]string{
		"nonexistent.path": {"something went wrong"},
		"":                 {"general failure"},
	})

	if len(mapping.Fields) != 0 {
		t.Fatalf("unknown paths must not map to fields, got %#v", mapping.Fields)
	}
	if len(mapping.Form) != 2 {
		t.Fatalf("expected 2 form-level messages, got %v", mapping.Form)
	}
}

func TestMapErrorsDropsBlanksAndDuplicates(t *testing.T) {
	mapping := MapErrors(employeeModel(), map[string][]string{
		"email": {" Invalid email address ", "Invalid email address", "", "  "},
	})

	if got := mapping.Fields["email"]; len(got) != 1 || got[0] != "Invalid email address" {
		t.Fatalf("expected single trimmed message, got %#v", got)
	}
}

func TestSortedHiddenFields(t *testing.T) {
	fields := SortedHiddenFields(map[string]string{
		"_method": "PUT",
		"_csrf":   "token",
		"  ":      "dropped",
	})

	want := []HiddenField{
		{Name: "_csrf", Value: "token"},
		{Name: "_method", Value: "PUT"},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("hidden field mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeHiddenFieldsLaterWins(t *testing.T) {
	merged := MergeHiddenFields(map[string]string{"_csrf": "old"}, CSRFToken("_csrf", "new"), MethodOverride("put"))

	if merged["_csrf"] != "new" {
		t.Fatalf("later field should win, got %#v", merged)
	}
	if merged["_method"] != "PUT" {
		t.Fatalf("method override should upper-case, got %#v", merged)
	}
}
