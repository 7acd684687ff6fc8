package model

import internalmodel "github.com/goliatone/go-formkit/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeDate    = internalmodel.FieldTypeDate
	FieldTypeArray   = internalmodel.FieldTypeArray
	FieldTypeObject  = internalmodel.FieldTypeObject
)

const (
	WidgetInput          = internalmodel.WidgetInput
	WidgetSelect         = internalmodel.WidgetSelect
	WidgetCheckbox       = internalmodel.WidgetCheckbox
	WidgetSwitch         = internalmodel.WidgetSwitch
	WidgetRadioGroup     = internalmodel.WidgetRadioGroup
	WidgetTextarea       = internalmodel.WidgetTextarea
	WidgetDatePicker     = internalmodel.WidgetDatePicker
	WidgetDateTimePicker = internalmodel.WidgetDateTimePicker
	WidgetRepeater       = internalmodel.WidgetRepeater
	WidgetFieldset       = internalmodel.WidgetFieldset
)

type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
type Definition = internalmodel.Definition
type Decorator = internalmodel.Decorator
type DecoratorFunc = internalmodel.DecoratorFunc

// DefaultLabeler re-exports the internal name-to-label helper.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
