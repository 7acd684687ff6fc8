// Package forms ships ready-made form definitions used by the examples and
// the CLI: schema, model definition, and state container wiring for each.
package forms

import (
	"time"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// PersonalInfoID identifies the personal information form.
const PersonalInfoID = "personal-info"

// Genders lists the options offered by the personal info form.
var Genders = []string{"Male", "Female", "Other", "Prefer not to say"}

// PersonalInfoSchema builds the validation schema for a personal profile:
// names and email are mandatory, the birth date cannot be in the future, and
// the terms checkbox must be accepted.
func PersonalInfoSchema() *schema.ObjectNode {
	return schema.Object(
		schema.Field{Name: "firstName", Node: schema.String().Required().MaxLen(60)},
		schema.Field{Name: "lastName", Node: schema.String().Required().MaxLen(60)},
		schema.Field{Name: "email", Node: schema.String().Required().Email()},
		schema.Field{Name: "phone", Node: schema.String().Pattern(`^\+?[0-9 ()-]{7,20}$`, "Invalid phone number")},
		schema.Field{Name: "birthDate", Node: schema.Date().NotAfter(today(), "Birth date cannot be in the future")},
		schema.Field{Name: "gender", Node: schema.String().OneOf(Genders)},
		schema.Field{Name: "bio", Node: schema.String().MaxLen(500)},
		schema.Field{Name: "acceptTerms", Node: schema.Boolean().MustBeTrue("You must accept the terms")},
	)
}

// PersonalInfoDefinition pairs the schema with the form's identity for the
// model builder.
func PersonalInfoDefinition() model.Definition {
	return model.Definition{
		ID:          PersonalInfoID,
		Action:      "/profile",
		Method:      "POST",
		Title:       "Personal Information",
		Description: "Tell us a little about yourself.",
		Schema:      PersonalInfoSchema(),
	}
}

// PersonalInfoModel builds the renderer-facing model, applying the widget
// overrides the schema alone cannot express (radio group, textarea, switch).
func PersonalInfoModel() (model.FormModel, error) {
	built, err := model.NewBuilder().Build(PersonalInfoDefinition())
	if err != nil {
		return model.FormModel{}, err
	}
	overrideWidget(&built, "gender", model.WidgetRadioGroup)
	overrideWidget(&built, "bio", model.WidgetTextarea)
	setHint(&built, "bio", "autoResize", "true")
	return built, nil
}

// NewPersonalInfoForm mounts a state container for the personal info form.
func NewPersonalInfoForm(initial map[string]any, onSubmit form.SubmitFunc) (*form.Form, error) {
	return form.New(initial, form.Config{
		Schema:   PersonalInfoSchema(),
		OnSubmit: onSubmit,
	})
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func overrideWidget(built *model.FormModel, name, widget string) {
	setHint(built, name, "widget", widget)
}

func setHint(built *model.FormModel, name, key, value string) {
	for i := range built.Fields {
		if built.Fields[i].Name != name {
			continue
		}
		if built.Fields[i].UIHints == nil {
			built.Fields[i].UIHints = make(map[string]string, 1)
		}
		built.Fields[i].UIHints[key] = value
		return
	}
}
