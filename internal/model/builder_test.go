package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
)

func TestBuildRequiresSchemaAndID(t *testing.T) {
	builder := New(Options{})

	if _, err := builder.Build(Definition{ID: "x"}); err == nil {
		t.Fatal("expected error for missing schema")
	}
	if _, err := builder.Build(Definition{Schema: schema.Object()}); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestBuildFieldOrderAndLabels(t *testing.T) {
	builder := New(Options{})
	form, err := builder.Build(Definition{
		ID:     "personal-info",
		Action: "/personal-info",
		Schema: schema.Object(
			schema.Field{Name: "firstName", Node: schema.String().Required()},
			schema.Field{Name: "lastName", Node: schema.String().Required()},
			schema.Field{Name: "email", Node: schema.String().Required().Email()},
		),
	})
	if err != nil {
		t.Fatal(err)
	}

	if form.Method != "POST" {
		t.Fatalf("expected default POST method, got %q", form.Method)
	}

	var names, labels []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
		labels = append(labels, field.Label)
	}
	if diff := cmp.Diff([]string{"firstName", "lastName", "email"}, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"First Name", "Last Name", "Email"}, labels); diff != "" {
		t.Fatalf("label mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWidgetDefaults(t *testing.T) {
	builder := New(Options{})
	form, err := builder.Build(Definition{
		ID: "employee",
		Schema: schema.Object(
			schema.Field{Name: "email", Node: schema.String().Required().Email()},
			schema.Field{Name: "jobType", Node: schema.String().OneOf([]string{"Full-Time", "Part-Time"})},
			schema.Field{Name: "remote", Node: schema.Boolean()},
			schema.Field{Name: "startDate", Node: schema.Date()},
			schema.Field{Name: "lastSeen", Node: schema.DateTime()},
			schema.Field{Name: "workHistories", Node: schema.Array(schema.Object(
				schema.Field{Name: "company", Node: schema.String().Required()},
			))},
		),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"email":         WidgetInput,
		"jobType":       WidgetSelect,
		"remote":        WidgetCheckbox,
		"startDate":     WidgetDatePicker,
		"lastSeen":      WidgetDateTimePicker,
		"workHistories": WidgetRepeater,
	}
	for _, field := range form.Fields {
		if got := field.Widget(); got != want[field.Name] {
			t.Errorf("%s: expected widget %q, got %q", field.Name, want[field.Name], got)
		}
	}

	var email Field
	for _, field := range form.Fields {
		if field.Name == "email" {
			email = field
		}
	}
	if email.Format != "email" {
		t.Fatalf("expected email format, got %q", email.Format)
	}
}

func TestBuildRepeaterItems(t *testing.T) {
	builder := New(Options{})
	form, err := builder.Build(Definition{
		ID: "employee",
		Schema: schema.Object(
			schema.Field{Name: "workHistories", Node: schema.Array(schema.Object(
				schema.Field{Name: "company", Node: schema.String().Required()},
				schema.Field{Name: "position", Node: schema.String().Required()},
			))},
		),
	})
	if err != nil {
		t.Fatal(err)
	}

	repeater := form.Fields[0]
	if repeater.Items == nil {
		t.Fatal("expected repeater items")
	}
	if len(repeater.Items.Nested) != 2 {
		t.Fatalf("expected 2 nested entry fields, got %d", len(repeater.Items.Nested))
	}
	if repeater.Items.Nested[0].Name != "company" || !repeater.Items.Nested[0].Required {
		t.Fatalf("unexpected entry field: %#v", repeater.Items.Nested[0])
	}
}

func TestBuildSurfacesValidationRules(t *testing.T) {
	builder := New(Options{})
	form, err := builder.Build(Definition{
		ID: "employee",
		Schema: schema.Object(
			schema.Field{Name: "salary", Node: schema.Number().Required().Min(0)},
		),
	})
	if err != nil {
		t.Fatal(err)
	}

	salary := form.Fields[0]
	if !salary.Required {
		t.Fatal("required rule should mark the field required")
	}
	var hasMin bool
	for _, rule := range salary.Validations {
		if rule.Kind == schema.RuleMin && rule.Params["value"] == "0" {
			hasMin = true
		}
	}
	if !hasMin {
		t.Fatalf("expected min rule, got %#v", salary.Validations)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"firstName":     "First Name",
		"work_history":  "Work History",
		"acceptTerms":   "Accept Terms",
		"email":         "Email",
		"jobType2":      "Job Type 2",
		"":              "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Errorf("%q: expected %q, got %q", input, want, got)
		}
	}
}
