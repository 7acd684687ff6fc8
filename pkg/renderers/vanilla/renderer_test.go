package vanilla

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
)

func registrationModel() model.FormModel {
	return model.FormModel{
		ID:     "employee-registration",
		Action: "/employees",
		Method: "POST",
		Title:  "Employee Registration",
		Fields: []model.Field{
			{Name: "email", Type: model.FieldTypeString, Format: "email", Label: "Email", Required: true},
			{Name: "jobType", Type: model.FieldTypeString, Label: "Job Type", Enum: []string{"Full-Time", "Part-Time"}, Metadata: map[string]string{"widget": model.WidgetSelect}},
			{Name: "remote", Type: model.FieldTypeBoolean, Label: "Remote", Metadata: map[string]string{"widget": model.WidgetSwitch}},
			{Name: "workHistories", Type: model.FieldTypeArray, Label: "Work History", Metadata: map[string]string{"widget": model.WidgetRepeater}, Items: &model.Field{
				Nested: []model.Field{
					{Name: "company", Type: model.FieldTypeString, Label: "Company"},
				},
			}},
		},
	}
}

func mustRender(t *testing.T, options render.RenderOptions) string {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(context.Background(), registrationModel(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(output)
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderEmitsFormChromeAndControls(t *testing.T) {
	html := mustRender(t, render.RenderOptions{})

	for _, want := range []string{
		`<form id="employee-registration" class="formkit-form" action="/employees" method="POST">`,
		`<h2>Employee Registration</h2>`,
		`<label class="formkit-label" for="fk-email">Email <span class="formkit-required"`,
		`<select id="fk-jobType" name="jobType">`,
		`role="switch"`,
		`data-repeater="workHistories"`,
		`<button type="submit" class="formkit-submit">Submit</button>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered form missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderBindsValuesByDottedPath(t *testing.T) {
	html := mustRender(t, render.RenderOptions{
		Values: map[string]any{
			"email":  "jane@example.com",
			"remote": true,
			"workHistories": []any{
				map[string]any{"company": "ACME"},
			},
		},
	})

	if !strings.Contains(html, `value="jane@example.com"`) {
		t.Fatalf("expected bound email value in:\n%s", html)
	}
	if !strings.Contains(html, `name="workHistories.0.company"`) {
		t.Fatalf("expected repeater entry for existing value in:\n%s", html)
	}
	if !strings.Contains(html, `value="ACME"`) {
		t.Fatalf("expected nested repeater value in:\n%s", html)
	}
}

func TestRenderSurfacesFieldAndFormErrors(t *testing.T) {
	html := mustRender(t, render.RenderOptions{
		Submitted: true,
		Errors: map[string][]string{
			"email":        {"Invalid email address"},
			"unknown.path": {"something else failed"},
		},
	})

	if !strings.Contains(html, `<p class="formkit-error" role="alert">Invalid email address</p>`) {
		t.Fatalf("expected field error in:\n%s", html)
	}
	if !strings.Contains(html, `class="formkit-form-errors"`) || !strings.Contains(html, "something else failed") {
		t.Fatalf("expected unknown path to surface as form-level error in:\n%s", html)
	}
	if !strings.Contains(html, `data-submitted="true"`) {
		t.Fatalf("expected submitted marker in:\n%s", html)
	}
}

func TestRenderIncludesHiddenFieldsSorted(t *testing.T) {
	html := mustRender(t, render.RenderOptions{
		Hidden: render.MergeHiddenFields(nil, render.CSRFToken("_csrf", "tok-1"), render.MethodOverride("put")),
	})

	csrf := strings.Index(html, `name="_csrf"`)
	method := strings.Index(html, `name="_method"`)
	if csrf < 0 || method < 0 || csrf > method {
		t.Fatalf("expected sorted hidden inputs in:\n%s", html)
	}
	if !strings.Contains(html, `value="PUT"`) {
		t.Fatalf("expected upper-cased method override in:\n%s", html)
	}
}

func TestRenderAppliesThemeTokens(t *testing.T) {
	html := mustRender(t, render.RenderOptions{
		Theme: &theme.Selection{
			Theme: "acme",
			Manifest: &theme.Manifest{
				Name:   "acme",
				Tokens: map[string]string{"primary": "#123456"},
			},
		},
	})

	if !strings.Contains(html, `style="--fk-primary: #123456;"`) {
		t.Fatalf("expected theme tokens as CSS vars in:\n%s", html)
	}
}

func TestRenderFailsOnUnknownWidget(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{
		ID: "broken",
		Fields: []model.Field{
			{Name: "field", Metadata: map[string]string{"widget": "holographic"}},
		},
	}
	if _, err := renderer.Render(context.Background(), form, render.RenderOptions{}); err == nil {
		t.Fatal("expected error for unregistered widget")
	}
}

func TestAssetsBundleExposesRuntimeFiles(t *testing.T) {
	assets := AssetsFS()
	for _, name := range []string{StylesheetName, RuntimeScriptName} {
		file, err := assets.Open(name)
		if err != nil {
			t.Fatalf("open asset %q: %v", name, err)
		}
		file.Close()
	}
}
