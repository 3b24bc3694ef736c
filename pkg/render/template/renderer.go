package template

import "io"

// TemplateRenderer renders named or inline templates with arbitrary data. The
// contract mirrors the github.com/goliatone/go-template engine so callers can
// swap in their own implementation for module-shell assembly.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
