package vanilla

import "strings"

// Class hooks the default stylesheet and runtime script target. Overriding
// themes restyle these without template changes.
const (
	classForm         = "formkit-form"
	classField        = "formkit-field"
	classFieldInvalid = "formkit-field-invalid"
	classLabel        = "formkit-label"
	classDescription  = "formkit-description"
	classError        = "formkit-error"
	classRequired     = "formkit-required"
	classFormErrors   = "formkit-form-errors"
	classSubmit       = "formkit-submit"
)

// pathID converts a dotted path into the id suffix components use
// ("workHistories.0.company" becomes "workHistories-0-company").
func pathID(path string) string {
	return strings.ReplaceAll(path, ".", "-")
}
