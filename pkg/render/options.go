package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the form model pipeline.
type RenderOptions struct {
	// Values pre-populates rendered controls using dotted field paths
	// (e.g. "author.email", "workHistories.0.company"). Repeater components
	// emit one entry per existing index.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field path. The form state
	// container has already gated these by touched/submitted, so renderers
	// display every entry they receive.
	Errors map[string][]string
	// Submitted marks the payload as a post-submit re-render; renderers may
	// use it to annotate the form chrome (aria-invalid, summary banner).
	Submitted bool
	// Hidden adds hidden inputs (CSRF tokens, method overrides) by name.
	Hidden map[string]string
	// Theme optionally selects a theme; manifest tokens surface as CSS custom
	// properties on the form root.
	Theme *theme.Selection
}
