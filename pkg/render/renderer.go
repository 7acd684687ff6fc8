// Package render defines the renderer contract shared by every output
// backend: a FormModel plus per-request RenderOptions in, bytes out.
// Renderers are stateless; values, validation errors, and theme selection all
// travel through the options so one renderer instance can serve many forms.
package render

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, terminal
// transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
