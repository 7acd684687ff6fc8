package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName    = "formkit-vanilla.css"
	RuntimeScriptName = "formkit-runtime.js"
)

// TemplatesFS exposes the embedded template bundle for consumers that want to
// use the built-in form rendering out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded asset bundle (CSS/JS) so callers can serve
// them over HTTP or copy them into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedAssets
	}
	return sub
}
