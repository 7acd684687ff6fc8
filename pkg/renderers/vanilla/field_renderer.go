package vanilla

import (
	"bytes"
	"fmt"
	"html"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla/components"
)

// fieldRenderer binds one render pass: the component registry plus the
// request's values and gated errors. It recurses through nested fields via
// the RenderChild hook handed to container components.
type fieldRenderer struct {
	components *components.Registry
	template   rendertemplate.TemplateRenderer
	values     map[string]any
	errors     map[string][]string
}

func newFieldRenderer(registry *components.Registry, engine rendertemplate.TemplateRenderer, options render.RenderOptions) *fieldRenderer {
	return &fieldRenderer{
		components: registry,
		template:   engine,
		values:     options.Values,
		errors:     options.Errors,
	}
}

// render produces the full markup for one field: the control from its widget
// component wrapped in label, description, and error chrome.
func (fr *fieldRenderer) render(field model.Field, path string) (string, error) {
	widget := field.Widget()
	component, ok := fr.components.Lookup(widget)
	if !ok {
		return "", fmt.Errorf("vanilla: no component registered for widget %q (field %q)", widget, path)
	}

	fieldErrors := fr.errors[path]
	data := components.ComponentData{
		Path:        path,
		Value:       valueAt(fr.values, path),
		Errors:      fieldErrors,
		Values:      fr.values,
		AllErrors:   fr.errors,
		Template:    fr.template,
		RenderChild: fr.render,
	}

	var control bytes.Buffer
	if err := component(&control, field, data); err != nil {
		return "", err
	}

	if widget == model.WidgetFieldset || widget == model.WidgetRepeater {
		return fr.wrapContainer(field, path, control.String(), fieldErrors), nil
	}
	return fr.wrapControl(field, path, widget, control.String(), fieldErrors), nil
}

// wrapControl emits the standard field chrome: label, control, description,
// error messages. Checkable widgets place the label after the control.
func (fr *fieldRenderer) wrapControl(field model.Field, path, widget, control string, fieldErrors []string) string {
	var buf bytes.Buffer
	buf.WriteString(`<div class="` + classField)
	if len(fieldErrors) > 0 {
		buf.WriteString(" " + classFieldInvalid)
	}
	buf.WriteString(`" data-field="` + html.EscapeString(path) + `">` + "\n")

	label := ""
	if field.Label != "" {
		label = `<label class="` + classLabel + `" for="fk-` + html.EscapeString(pathID(path)) + `">` + html.EscapeString(field.Label) + requiredMark(field) + `</label>` + "\n"
	}

	checkable := widget == model.WidgetCheckbox || widget == model.WidgetSwitch
	if !checkable {
		buf.WriteString(label)
	}
	buf.WriteString(control + "\n")
	if checkable {
		buf.WriteString(label)
	}

	if field.Description != "" {
		buf.WriteString(`<p class="` + classDescription + `">` + html.EscapeString(field.Description) + "</p>\n")
	}
	writeFieldErrors(&buf, fieldErrors)
	buf.WriteString("</div>\n")
	return buf.String()
}

// wrapContainer wraps fieldsets and repeaters, which carry their own legend
// and entry chrome, so only the outer hook and error list are added.
func (fr *fieldRenderer) wrapContainer(field model.Field, path, control string, fieldErrors []string) string {
	var buf bytes.Buffer
	buf.WriteString(`<div class="` + classField + `" data-field="` + html.EscapeString(path) + `">` + "\n")
	if field.Label != "" && field.Widget() == model.WidgetRepeater {
		buf.WriteString(`<span class="` + classLabel + `">` + html.EscapeString(field.Label) + requiredMark(field) + "</span>\n")
	}
	buf.WriteString(control + "\n")
	if field.Description != "" {
		buf.WriteString(`<p class="` + classDescription + `">` + html.EscapeString(field.Description) + "</p>\n")
	}
	writeFieldErrors(&buf, fieldErrors)
	buf.WriteString("</div>\n")
	return buf.String()
}

func writeFieldErrors(buf *bytes.Buffer, messages []string) {
	for _, message := range messages {
		buf.WriteString(`<p class="` + classError + `" role="alert">` + html.EscapeString(message) + "</p>\n")
	}
}

func requiredMark(field model.Field) string {
	if !field.Required {
		return ""
	}
	return ` <span class="` + classRequired + `" aria-hidden="true">*</span>`
}
