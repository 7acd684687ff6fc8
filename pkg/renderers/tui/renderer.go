// Package tui renders form models as interactive terminal sessions: one
// prompt per field, inline validation, and a serialized value bag as output.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// Renderer implements render.Renderer for terminal-driven sessions. Render
// walks the form model prompting for every field, then serializes the
// collected values in the configured output format.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	submitFunc        SubmitFunc
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field in model order and serializes the answers.
// Existing values in the options pre-fill prompt defaults; existing errors
// are echoed before the offending prompt so re-submission flows read well.
// When a submit func is configured, the collected bag is validated at the end
// of the walk and failing fields are re-prompted until the bag passes.
func (r *Renderer) Render(ctx context.Context, formModel model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if title := strings.TrimSpace(formModel.Title); title != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+title); err != nil {
			return nil, err
		}
	}

	values := make(map[string]any)
	for _, field := range formModel.Fields {
		if err := r.promptField(ctx, field, field.Name, values, opts); err != nil {
			return nil, err
		}
	}

	if r.submitFunc != nil {
		if err := r.submitLoop(ctx, formModel, values, opts); err != nil {
			return nil, err
		}
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

// submitLoop validates the collected bag and re-prompts only the fields whose
// paths carry errors, until the bag validates or the session is aborted.
// Bag-level messages (an empty error path) are echoed before the prompts.
func (r *Renderer) submitLoop(ctx context.Context, formModel model.FormModel, values map[string]any, opts render.RenderOptions) error {
	for {
		errs := r.submitFunc(values)
		if errs.Empty() {
			return nil
		}

		for _, message := range errs[""] {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
				return err
			}
		}

		retry := opts
		retry.Errors = errs
		retry.Values = values
		for _, field := range formModel.Fields {
			if !hasErrorUnder(errs, field.Name) {
				continue
			}
			if err := r.promptField(ctx, field, field.Name, values, retry); err != nil {
				return err
			}
		}
	}
}

// hasErrorUnder reports whether any error path addresses the named top-level
// field or one of its descendants.
func hasErrorUnder(errs schema.ErrorMap, name string) bool {
	for path := range errs {
		if path == name || strings.HasPrefix(path, name+".") {
			return true
		}
	}
	return false
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	if err := r.echoErrors(ctx, path, opts); err != nil {
		return err
	}

	switch field.Widget() {
	case model.WidgetFieldset:
		return r.promptFieldset(ctx, field, path, values, opts)
	case model.WidgetRepeater:
		return r.promptRepeater(ctx, field, path, values, opts)
	case model.WidgetCheckbox, model.WidgetSwitch:
		return r.promptBoolean(ctx, field, path, values, opts)
	case model.WidgetSelect, model.WidgetRadioGroup:
		return r.promptEnum(ctx, field, path, values, opts)
	case model.WidgetTextarea:
		return r.promptTextArea(ctx, field, path, values, opts)
	default:
		return r.promptInput(ctx, field, path, values, opts)
	}
}

func (r *Renderer) promptInput(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   promptMessage(field, path),
		Help:      field.Description,
		Default:   stringDefault(field, path, opts),
		Validator: validatorFor(field),
	})
	if err != nil {
		return err
	}
	return storeAnswer(values, path, answer)
}

func (r *Renderer) promptTextArea(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	answer, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: promptMessage(field, path),
		Help:    field.Description,
		Default: stringDefault(field, path, opts),
	})
	if err != nil {
		return err
	}
	return storeAnswer(values, path, answer)
}

func (r *Renderer) promptBoolean(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	preset := false
	if current, ok := form.GetValue(opts.Values, path); ok {
		preset, _ = current.(bool)
	}
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: promptMessage(field, path),
		Help:    field.Description,
		Default: preset,
	})
	if err != nil {
		return err
	}
	return form.SetValue(values, path, answer)
}

func (r *Renderer) promptEnum(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	if len(field.Enum) == 0 {
		return fmt.Errorf("tui: field %q has no options to select from", path)
	}
	index, err := r.driver.Select(ctx, SelectConfig{
		Message:      promptMessage(field, path),
		Options:      field.Enum,
		Help:         field.Description,
		DefaultIndex: indexOf(field.Enum, stringDefault(field, path, opts)),
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(field.Enum) {
		return fmt.Errorf("tui: selection out of range for %q", path)
	}
	return form.SetValue(values, path, field.Enum[index])
}

// promptRepeater collects zero or more entries, confirming after each whether
// another should be added.
func (r *Renderer) promptRepeater(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	if field.Items == nil {
		return fmt.Errorf("tui: repeater %q has no item schema", path)
	}

	label := field.Label
	if label == "" {
		label = path
	}
	for index := 0; ; index++ {
		message := fmt.Sprintf("Add a %s entry?", label)
		if index > 0 {
			message = fmt.Sprintf("Add another %s entry?", label)
		}
		more, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return err
		}
		if !more {
			if index == 0 {
				return form.SetValue(values, path, []any{})
			}
			return nil
		}
		entryPath := fmt.Sprintf("%s.%d", path, index)
		for _, nested := range field.Items.Nested {
			if err := r.promptField(ctx, nested, entryPath+"."+nested.Name, values, opts); err != nil {
				return err
			}
		}
	}
}

func (r *Renderer) promptFieldset(ctx context.Context, field model.Field, path string, values map[string]any, opts render.RenderOptions) error {
	if field.Label != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+field.Label); err != nil {
			return err
		}
	}
	for _, nested := range field.Nested {
		if err := r.promptField(ctx, nested, path+"."+nested.Name, values, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) echoErrors(ctx context.Context, path string, opts render.RenderOptions) error {
	for _, message := range opts.Errors[path] {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		flattenValues("", values, encoded)
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		encoded := url.Values{}
		flattenValues("", values, encoded)
		keys := make([]string, 0, len(encoded))
		for key := range encoded {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var sb strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&sb, "%s: %s\n", key, strings.Join(encoded[key], ", "))
		}
		return []byte(sb.String()), nil
	default:
		return json.MarshalIndent(values, "", "  ")
	}
}

// storeAnswer writes a raw prompt answer; blank answers are skipped so
// optional fields stay absent from the collected bag.
func storeAnswer(values map[string]any, path, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	return form.SetValue(values, path, answer)
}

func promptMessage(field model.Field, path string) string {
	if field.Label != "" {
		return field.Label
	}
	return path
}

func stringDefault(field model.Field, path string, opts render.RenderOptions) string {
	if current, ok := form.GetValue(opts.Values, path); ok {
		if s, ok := current.(string); ok {
			return s
		}
		return fmt.Sprint(current)
	}
	if field.Default != nil {
		return fmt.Sprint(field.Default)
	}
	return ""
}

func flattenValues(prefix string, value any, out url.Values) {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenValues(path, child, out)
		}
	case []any:
		if len(typed) == 0 && prefix != "" {
			out.Set(prefix, "")
			return
		}
		for index, child := range typed {
			flattenValues(fmt.Sprintf("%s.%d", prefix, index), child, out)
		}
	default:
		if prefix != "" {
			out.Set(prefix, fmt.Sprint(typed))
		}
	}
}
