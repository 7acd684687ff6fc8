// Package model defines the typed form model consumed by renderers. Builders
// reside in internal/model but return the types defined here. Validation
// rules expose canonical identifiers (min/max, minLength/maxLength, pattern,
// email) with string parameters so renderers can map constraints onto HTML
// attributes or prompt validators without sacrificing deterministic JSON
// snapshots. The curated UIHints map surfaces renderer-facing directives such
// as placeholder, helpText, cssClass, widget, and hideLabel.
package model
