// Package template defines the template-engine seam renderers rely on, so
// HTML backends can swap engines without touching field rendering logic.
package template

import "io"

// TemplateRenderer is the engine contract. Render resolves a name to either
// a loaded template or inline content, RenderTemplate always loads by name,
// and RenderString always parses inline content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
