package components

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/schema"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(schema.DateLayout, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func renderComponent(t *testing.T, renderer Renderer, field model.Field, data ComponentData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := renderer(&buf, field, data); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	registry := NewDefaultRegistry()

	if _, ok := registry.Lookup("Select"); !ok {
		t.Fatal("expected case-insensitive lookup to find select")
	}
	if _, ok := registry.Lookup("unknown-widget"); ok {
		t.Fatal("unexpected renderer for unknown widget")
	}
}

func TestRegistryRejectsEmptyNameAndNilRenderer(t *testing.T) {
	registry := New()

	if err := registry.Register("  ", Input); err == nil {
		t.Fatal("expected error for blank name")
	}
	if err := registry.Register("input", nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}

func TestInputDerivesTypeAndConstraints(t *testing.T) {
	field := model.Field{
		Name:     "email",
		Type:     model.FieldTypeString,
		Format:   "email",
		Required: true,
		Validations: []schema.Rule{
			{Kind: schema.RuleMaxLength, Params: map[string]string{"value": "120"}},
		},
	}
	html := renderComponent(t, Input, field, ComponentData{Path: "email", Value: "a@b.com"})

	for _, want := range []string{`type="email"`, `name="email"`, `id="fk-email"`, `value="a@b.com"`, `maxlength="120"`, ` required`} {
		if !strings.Contains(html, want) {
			t.Fatalf("input missing %q in:\n%s", want, html)
		}
	}
}

func TestInputMarksInvalidFields(t *testing.T) {
	html := renderComponent(t, Input, model.Field{Name: "email"}, ComponentData{
		Path:   "email",
		Errors: []string{"Invalid email address"},
	})

	if !strings.Contains(html, `aria-invalid="true"`) {
		t.Fatalf("expected aria-invalid, got:\n%s", html)
	}
}

func TestNumberInputUsesAnyStep(t *testing.T) {
	field := model.Field{Name: "salary", Type: model.FieldTypeNumber}
	html := renderComponent(t, Input, field, ComponentData{Path: "salary", Value: float64(50000.5)})

	if !strings.Contains(html, `type="number"`) || !strings.Contains(html, `step="any"`) {
		t.Fatalf("expected numeric input with free step, got:\n%s", html)
	}
	if !strings.Contains(html, `value="50000.5"`) {
		t.Fatalf("expected formatted numeric value, got:\n%s", html)
	}
}

func TestSelectMarksCurrentOption(t *testing.T) {
	field := model.Field{Name: "jobType", Enum: []string{"Full-Time", "Part-Time"}}
	html := renderComponent(t, Select, field, ComponentData{Path: "jobType", Value: "Part-Time"})

	if !strings.Contains(html, `<option value="Part-Time" selected>`) {
		t.Fatalf("expected current option selected, got:\n%s", html)
	}
	if strings.Contains(html, `<option value="Full-Time" selected>`) {
		t.Fatalf("unexpected selected option, got:\n%s", html)
	}
}

func TestSelectRequiresEnumOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := Select(&buf, model.Field{Name: "jobType"}, ComponentData{Path: "jobType"}); err == nil {
		t.Fatal("expected error for select without options")
	}
}

func TestCheckboxEmitsHiddenFallback(t *testing.T) {
	html := renderComponent(t, Checkbox, model.Field{Name: "remote"}, ComponentData{Path: "remote", Value: true})

	if !strings.Contains(html, `<input type="hidden" name="remote" value="false">`) {
		t.Fatalf("expected hidden fallback, got:\n%s", html)
	}
	if !strings.Contains(html, ` checked`) {
		t.Fatalf("expected checked state, got:\n%s", html)
	}
}

func TestSwitchCarriesRole(t *testing.T) {
	html := renderComponent(t, Switch, model.Field{Name: "remote"}, ComponentData{Path: "remote"})

	if !strings.Contains(html, `role="switch"`) {
		t.Fatalf("expected switch role, got:\n%s", html)
	}
	if strings.Contains(html, ` checked`) {
		t.Fatalf("unexpected checked state, got:\n%s", html)
	}
}

func TestRadioGroupRendersOnePerOption(t *testing.T) {
	field := model.Field{Name: "gender", Enum: []string{"Male", "Female", "Other"}}
	html := renderComponent(t, RadioGroup, field, ComponentData{Path: "gender", Value: "Other"})

	if got := strings.Count(html, `type="radio"`); got != 3 {
		t.Fatalf("expected 3 radios, got %d:\n%s", got, html)
	}
	if !strings.Contains(html, `value="Other" checked`) {
		t.Fatalf("expected current option checked, got:\n%s", html)
	}
}

func TestTextareaAutoResizeHint(t *testing.T) {
	field := model.Field{Name: "bio", UIHints: map[string]string{"autoResize": "true", "rows": "4"}}
	html := renderComponent(t, Textarea, field, ComponentData{Path: "bio", Value: "a <b> c"})

	for _, want := range []string{`data-auto-resize`, `rows="4"`, `a &lt;b&gt; c`} {
		if !strings.Contains(html, want) {
			t.Fatalf("textarea missing %q in:\n%s", want, html)
		}
	}
}

func TestDatePickersFormatValues(t *testing.T) {
	birth := mustParseDate(t, "1990-04-01")
	html := renderComponent(t, DatePicker, model.Field{Name: "birthDate"}, ComponentData{Path: "birthDate", Value: birth})
	if !strings.Contains(html, `type="date"`) || !strings.Contains(html, `value="1990-04-01"`) {
		t.Fatalf("unexpected date markup:\n%s", html)
	}

	html = renderComponent(t, DateTimePicker, model.Field{Name: "startDate"}, ComponentData{Path: "startDate", Value: "2026-09-01T09:00"})
	if !strings.Contains(html, `type="datetime-local"`) || !strings.Contains(html, `value="2026-09-01T09:00"`) {
		t.Fatalf("unexpected datetime markup:\n%s", html)
	}
}

func TestRepeaterRendersEntriesAndBlankTemplate(t *testing.T) {
	field := model.Field{
		Name: "workHistories",
		Type: model.FieldTypeArray,
		Items: &model.Field{
			Nested: []model.Field{
				{Name: "company", Type: model.FieldTypeString},
			},
		},
	}
	data := ComponentData{
		Path:  "workHistories",
		Value: []any{map[string]any{"company": "ACME"}, map[string]any{"company": "Initech"}},
		RenderChild: func(child model.Field, path string) (string, error) {
			return `<input name="` + path + `">`, nil
		},
	}
	html := renderComponent(t, Repeater, field, data)

	for _, want := range []string{
		`name="workHistories.0.company"`,
		`name="workHistories.1.company"`,
		`name="workHistories.__INDEX__.company"`,
		`data-repeater-add`,
		`data-repeater-remove`,
		`<template data-repeater-blank>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("repeater missing %q in:\n%s", want, html)
		}
	}
}

func TestRepeaterRequiresItemsAndChildRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := Repeater(&buf, model.Field{Name: "list"}, ComponentData{Path: "list"}); err == nil {
		t.Fatal("expected error without items schema")
	}

	field := model.Field{Name: "list", Items: &model.Field{}}
	if err := Repeater(&buf, field, ComponentData{Path: "list"}); err == nil {
		t.Fatal("expected error without child renderer")
	}
}

func TestFieldsetRendersChildrenWithLegend(t *testing.T) {
	field := model.Field{
		Name:  "address",
		Label: "Address",
		Nested: []model.Field{
			{Name: "street"},
			{Name: "city"},
		},
	}
	data := ComponentData{
		Path: "address",
		RenderChild: func(child model.Field, path string) (string, error) {
			return `<input name="` + path + `">`, nil
		},
	}
	html := renderComponent(t, Fieldset, field, data)

	for _, want := range []string{`<legend>Address</legend>`, `name="address.street"`, `name="address.city"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("fieldset missing %q in:\n%s", want, html)
		}
	}
}
