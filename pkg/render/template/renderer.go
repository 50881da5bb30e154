package template

import (
	"io"

	gotemplatepkg "github.com/goliatone/go-template"
)

// go-template engines plug into the same seam.
var _ TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// Renderer executes a named template with data and returns the output,
// copying it to any writers passed in out.
type Renderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}

// TemplateRenderer is a full engine: inline templates, custom filters and
// values shared by every render, on top of Renderer.
type TemplateRenderer interface {
	Renderer
	Render(nameOrContent string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
