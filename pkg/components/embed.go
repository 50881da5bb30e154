package components

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle. Paths are rooted at
// "templates/", e.g. "templates/date-input.tmpl".
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
