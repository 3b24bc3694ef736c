// Package template defines the renderer-agnostic template contract used for
// module-shell assembly. The gotemplate subpackage provides the default
// pongo2-backed implementation; callers may supply their own.
package template
