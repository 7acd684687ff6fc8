package components

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// NewDefaultRegistry returns a registry populated with the built-in widgets.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(model.WidgetInput, Input)
	registry.MustRegister(model.WidgetSelect, Select)
	registry.MustRegister(model.WidgetCheckbox, Checkbox)
	registry.MustRegister(model.WidgetSwitch, Switch)
	registry.MustRegister(model.WidgetRadioGroup, RadioGroup)
	registry.MustRegister(model.WidgetTextarea, Textarea)
	registry.MustRegister(model.WidgetDatePicker, DatePicker)
	registry.MustRegister(model.WidgetDateTimePicker, DateTimePicker)
	registry.MustRegister(model.WidgetRepeater, Repeater)
	registry.MustRegister(model.WidgetFieldset, Fieldset)
	return registry
}

// Input renders a single-line control. The input type derives from the field
// type and format: email, number, or text.
func Input(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	inputType := "text"
	switch {
	case field.Format == "email":
		inputType = "email"
	case field.Type == model.FieldTypeNumber || field.Type == model.FieldTypeInteger:
		inputType = "number"
	}
	if hint := field.UIHints["inputType"]; hint != "" {
		inputType = hint
	}

	buf.WriteString(`<input type="`)
	buf.WriteString(inputType)
	buf.WriteString(`"`)
	writeIdentity(buf, field, data)
	if field.Placeholder != "" {
		writeAttr(buf, "placeholder", field.Placeholder)
	}
	if value := displayValue(data.Value); value != "" {
		writeAttr(buf, "value", value)
	}
	if inputType == "number" && field.Type == model.FieldTypeNumber {
		writeAttr(buf, "step", "any")
	}
	writeConstraintAttrs(buf, field)
	writeValidityAttrs(buf, field, data)
	buf.WriteString(">")
	return nil
}

// Select renders a dropdown from the field's enum options, with a blank
// placeholder option while nothing is chosen.
func Select(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	if len(field.Enum) == 0 {
		return fmt.Errorf("components: select for %q requires enum options", data.Path)
	}

	buf.WriteString(`<select`)
	writeIdentity(buf, field, data)
	writeValidityAttrs(buf, field, data)
	buf.WriteString(">\n")

	current := displayValue(data.Value)
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = "Select..."
	}
	buf.WriteString(`  <option value=""`)
	if current == "" {
		buf.WriteString(` selected`)
	}
	buf.WriteString(` disabled>` + html.EscapeString(placeholder) + "</option>\n")

	for _, option := range field.Enum {
		buf.WriteString(`  <option value="` + html.EscapeString(option) + `"`)
		if option == current {
			buf.WriteString(` selected`)
		}
		buf.WriteString(`>` + html.EscapeString(option) + "</option>\n")
	}
	buf.WriteString("</select>")
	return nil
}

// Checkbox renders a checkbox with the hidden-input fallback so unchecked
// boxes still submit a value.
func Checkbox(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	return checkable(buf, field, data, "checkbox", "")
}

// Switch renders a checkbox styled as a toggle via a role attribute; the
// submission semantics match Checkbox.
func Switch(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	return checkable(buf, field, data, "checkbox", "switch")
}

func checkable(buf *bytes.Buffer, field model.Field, data ComponentData, inputType, role string) error {
	buf.WriteString(`<input type="hidden"`)
	writeAttr(buf, "name", data.Path)
	writeAttr(buf, "value", "false")
	buf.WriteString(">\n")

	buf.WriteString(`<input type="` + inputType + `"`)
	writeIdentity(buf, field, data)
	writeAttr(buf, "value", "true")
	if role != "" {
		writeAttr(buf, "role", role)
	}
	if truthy(data.Value) {
		buf.WriteString(` checked`)
	}
	writeValidityAttrs(buf, field, data)
	buf.WriteString(">")
	return nil
}

// RadioGroup renders one radio input per enum option inside a fieldset.
func RadioGroup(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	if len(field.Enum) == 0 {
		return fmt.Errorf("components: radio group for %q requires enum options", data.Path)
	}

	current := displayValue(data.Value)
	buf.WriteString(`<div class="formkit-radio-group" role="radiogroup">` + "\n")
	for i, option := range field.Enum {
		id := controlID(data.Path) + "-" + strconv.Itoa(i)
		buf.WriteString(`  <label for="` + id + `">`)
		buf.WriteString(`<input type="radio" id="` + id + `"`)
		writeAttr(buf, "name", data.Path)
		writeAttr(buf, "value", option)
		if option == current {
			buf.WriteString(` checked`)
		}
		buf.WriteString(`> ` + html.EscapeString(option) + "</label>\n")
	}
	buf.WriteString("</div>")
	return nil
}

// Textarea renders a multi-line control. UIHints["autoResize"] = "true" adds
// the data attribute the runtime script uses to grow the control with its
// content.
func Textarea(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	buf.WriteString(`<textarea`)
	writeIdentity(buf, field, data)
	if field.Placeholder != "" {
		writeAttr(buf, "placeholder", field.Placeholder)
	}
	if rows := field.UIHints["rows"]; rows != "" {
		writeAttr(buf, "rows", rows)
	}
	if field.UIHints["autoResize"] == "true" {
		buf.WriteString(` data-auto-resize`)
	}
	writeConstraintAttrs(buf, field)
	writeValidityAttrs(buf, field, data)
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(displayValue(data.Value)))
	buf.WriteString("</textarea>")
	return nil
}

// DatePicker renders a native date input (day precision).
func DatePicker(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	return dateInput(buf, field, data, "date", schema.DateLayout)
}

// DateTimePicker renders a native datetime-local input.
func DateTimePicker(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	return dateInput(buf, field, data, "datetime-local", schema.DateTimeLayout)
}

func dateInput(buf *bytes.Buffer, field model.Field, data ComponentData, inputType, layout string) error {
	buf.WriteString(`<input type="` + inputType + `"`)
	writeIdentity(buf, field, data)
	if value := dateValue(data.Value, layout); value != "" {
		writeAttr(buf, "value", value)
	}
	for _, rule := range field.Validations {
		if rule.Kind == schema.RuleNotAfter {
			writeAttr(buf, "max", rule.Params["value"])
		}
	}
	writeValidityAttrs(buf, field, data)
	buf.WriteString(">")
	return nil
}

// Repeater renders one fieldset per existing entry with index-stable input
// names, per-entry remove buttons, an append button, and a <template> blank
// the runtime clones for new entries.
func Repeater(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	if field.Items == nil {
		return fmt.Errorf("components: repeater for %q requires an items schema", data.Path)
	}
	if data.RenderChild == nil {
		return fmt.Errorf("components: repeater for %q requires a child renderer", data.Path)
	}

	entries := listValue(data.Value)
	buf.WriteString(`<div class="formkit-repeater" data-repeater="` + html.EscapeString(data.Path) + `">` + "\n")

	for index := range entries {
		if err := repeaterEntry(buf, field, data, strconv.Itoa(index), true); err != nil {
			return err
		}
	}

	buf.WriteString(`<template data-repeater-blank>` + "\n")
	if err := repeaterEntry(buf, field, data, "__INDEX__", false); err != nil {
		return err
	}
	buf.WriteString("</template>\n")

	label := field.UIHints["repeaterLabel"]
	if label == "" {
		label = "Add entry"
	}
	buf.WriteString(`<button type="button" data-repeater-add>` + html.EscapeString(label) + "</button>\n")
	buf.WriteString("</div>")
	return nil
}

func repeaterEntry(buf *bytes.Buffer, field model.Field, data ComponentData, index string, bind bool) error {
	buf.WriteString(`<fieldset class="formkit-repeater-entry" data-repeater-entry>` + "\n")
	for _, nested := range field.Items.Nested {
		childPath := data.Path + "." + index + "." + nested.Name
		if !bind {
			// Blank template entries carry no values or errors.
			nested.Default = nil
		}
		markup, err := data.RenderChild(nested, childPath)
		if err != nil {
			return err
		}
		buf.WriteString(markup)
	}
	buf.WriteString(`<button type="button" data-repeater-remove>Remove</button>` + "\n")
	buf.WriteString("</fieldset>\n")
	return nil
}

// Fieldset renders a nested object as a grouped set of child controls.
func Fieldset(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	if data.RenderChild == nil {
		return fmt.Errorf("components: fieldset for %q requires a child renderer", data.Path)
	}
	buf.WriteString(`<fieldset class="formkit-fieldset">` + "\n")
	if field.Label != "" {
		buf.WriteString(`<legend>` + html.EscapeString(field.Label) + "</legend>\n")
	}
	for _, nested := range field.Nested {
		markup, err := data.RenderChild(nested, data.Path+"."+nested.Name)
		if err != nil {
			return err
		}
		buf.WriteString(markup)
	}
	buf.WriteString("</fieldset>")
	return nil
}

func writeIdentity(buf *bytes.Buffer, _ model.Field, data ComponentData) {
	writeAttr(buf, "id", controlID(data.Path))
	writeAttr(buf, "name", data.Path)
}

func writeValidityAttrs(buf *bytes.Buffer, field model.Field, data ComponentData) {
	if field.Required {
		buf.WriteString(` required`)
	}
	if len(data.Errors) > 0 {
		buf.WriteString(` aria-invalid="true"`)
	}
}

// writeConstraintAttrs maps validation rule metadata onto native HTML
// constraint attributes so browsers mirror the schema's rules.
func writeConstraintAttrs(buf *bytes.Buffer, field model.Field) {
	for _, rule := range field.Validations {
		switch rule.Kind {
		case schema.RuleMinLength:
			writeAttr(buf, "minlength", rule.Params["value"])
		case schema.RuleMaxLength:
			writeAttr(buf, "maxlength", rule.Params["value"])
		case schema.RulePattern:
			writeAttr(buf, "pattern", rule.Params["pattern"])
		case schema.RuleMin:
			writeAttr(buf, "min", rule.Params["value"])
		case schema.RuleMax:
			writeAttr(buf, "max", rule.Params["value"])
		}
	}
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(` ` + name + `="` + html.EscapeString(value) + `"`)
}

// controlID derives a DOM id from a dotted path ("fk-workHistories-0-company").
func controlID(path string) string {
	return "fk-" + strings.ReplaceAll(path, ".", "-")
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(schema.DateLayout)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func dateValue(value any, layout string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(layout)
	case string:
		return v
	default:
		return ""
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true
		}
	}
	return false
}

func listValue(value any) []any {
	items, _ := value.([]any)
	return items
}
