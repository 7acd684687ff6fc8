package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
)

func signupSchema() *schema.ObjectNode {
	return schema.Object(
		schema.Field{Name: "firstName", Node: schema.String().Required()},
		schema.Field{Name: "email", Node: schema.String().Required().Email()},
	)
}

func TestSubmitInvokesCallbackOnceWithCoercedBag(t *testing.T) {
	var calls int
	var received map[string]any

	f, err := New(nil, Config{
		Schema: signupSchema(),
		OnSubmit: func(values map[string]any) {
			calls++
			received = values
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "firstName", "Ada")
	mustSet(t, f, "email", "ada@example.com")

	if errs := f.Submit(); errs != nil {
		t.Fatalf("expected valid submit, got %#v", errs)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one callback invocation, got %d", calls)
	}

	want := map[string]any{"firstName": "Ada", "email": "ada@example.com"}
	if diff := cmp.Diff(want, received); diff != "" {
		t.Fatalf("submitted bag mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitSuppressedWhenInvalid(t *testing.T) {
	var calls int
	f, err := New(nil, Config{
		Schema:   signupSchema(),
		OnSubmit: func(map[string]any) { calls++ },
	})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "firstName", "Ada")

	errs := f.Submit()
	if errs == nil || !errs.Has("email") {
		t.Fatalf("expected email error, got %#v", errs)
	}
	if calls != 0 {
		t.Fatalf("callback must not run on invalid submit, got %d calls", calls)
	}
	if !f.Submitted() {
		t.Fatal("form should be flagged submitted")
	}
}

func TestSubmitResetsOnSuccess(t *testing.T) {
	initial := map[string]any{"firstName": "", "email": ""}
	f, err := New(initial, Config{Schema: signupSchema(), OnSubmit: func(map[string]any) {}})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "firstName", "Ada")
	mustSet(t, f, "email", "ada@example.com")
	if errs := f.Submit(); errs != nil {
		t.Fatalf("expected valid submit, got %#v", errs)
	}

	if diff := cmp.Diff(initial, f.Values()); diff != "" {
		t.Fatalf("values should reset after submit (-want +got):\n%s", diff)
	}
	if f.Dirty() || f.Submitted() {
		t.Fatal("flags should clear after successful submit")
	}
}

func TestValidateOnChangeMode(t *testing.T) {
	f, err := New(nil, Config{Schema: signupSchema(), Mode: ValidateOnChange})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "email", "not-an-email")
	if got := f.Errors().First("email"); got != schema.MsgInvalidEmail {
		t.Fatalf("expected live email error, got %#v", f.Errors())
	}

	mustSet(t, f, "email", "a@b.com")
	if f.Errors().Has("email") {
		t.Fatalf("correction should clear the error, got %#v", f.Errors())
	}
}

func TestVisibleErrorsGatedByTouched(t *testing.T) {
	f, err := New(nil, Config{Schema: signupSchema(), Mode: ValidateOnChange})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "email", "nope")

	visible := f.VisibleErrors()
	if !visible.Has("email") {
		t.Fatalf("touched field should show its error, got %#v", visible)
	}
	if visible.Has("firstName") {
		t.Fatalf("pristine field must stay silent, got %#v", visible)
	}

	f.Submit()
	if !f.VisibleErrors().Has("firstName") {
		t.Fatal("after submit every error is visible")
	}
}

func TestFieldStateLifecycle(t *testing.T) {
	f, err := New(nil, Config{Schema: signupSchema(), Mode: ValidateOnChange})
	if err != nil {
		t.Fatal(err)
	}

	if got := f.State("email"); got != Pristine {
		t.Fatalf("expected Pristine, got %v", got)
	}

	mustSet(t, f, "email", "nope")
	if got := f.State("email"); got != Invalid {
		t.Fatalf("expected Invalid, got %v", got)
	}

	mustSet(t, f, "email", "a@b.com")
	if got := f.State("email"); got != Valid {
		t.Fatalf("expected Valid after correction, got %v", got)
	}

	f.Reset()
	if got := f.State("email"); got != Pristine {
		t.Fatalf("reset should restore Pristine, got %v", got)
	}
}

func TestResetRestoresInitialValues(t *testing.T) {
	initial := map[string]any{"firstName": "Ada", "email": "ada@example.com"}
	f, err := New(initial, Config{Schema: signupSchema()})
	if err != nil {
		t.Fatal(err)
	}

	mustSet(t, f, "firstName", "Grace")
	f.Submit()
	f.Reset()

	if diff := cmp.Diff(initial, f.Values()); diff != "" {
		t.Fatalf("reset mismatch (-want +got):\n%s", diff)
	}
	if f.Dirty() || f.Submitted() || !f.Errors().Empty() {
		t.Fatal("reset should clear all flags and errors")
	}
}

func TestResetWithExplicitValues(t *testing.T) {
	f, err := New(nil, Config{Schema: signupSchema()})
	if err != nil {
		t.Fatal(err)
	}

	replacement := map[string]any{"firstName": "Grace", "email": "grace@example.com"}
	f.Reset(replacement)

	if diff := cmp.Diff(replacement, f.Values()); diff != "" {
		t.Fatalf("explicit reset mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribeNotifiesAndUnsubscribes(t *testing.T) {
	f, err := New(nil, Config{Schema: signupSchema()})
	if err != nil {
		t.Fatal(err)
	}

	var fired int
	cancel := f.Subscribe(func() { fired++ })

	mustSet(t, f, "firstName", "Ada")
	f.Reset()
	if fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", fired)
	}

	cancel()
	mustSet(t, f, "firstName", "Grace")
	if fired != 2 {
		t.Fatalf("unsubscribed listener must not fire, got %d", fired)
	}
}

func TestInitialValuesAreCopied(t *testing.T) {
	initial := map[string]any{"firstName": "Ada", "email": "ada@example.com"}
	f, err := New(initial, Config{Schema: signupSchema()})
	if err != nil {
		t.Fatal(err)
	}

	initial["firstName"] = "mutated"
	if value, _ := f.Get("firstName"); value != "Ada" {
		t.Fatalf("form must own a copy of its initial values, got %#v", value)
	}
}

func mustSet(t *testing.T, f *Form, path string, value any) {
	t.Helper()
	if err := f.Set(path, value); err != nil {
		t.Fatalf("set %s: %v", path, err)
	}
}
