package govuk

import (
	"io/fs"

	"github.com/goliatone/go-govuk/pkg/components"
)

// EmbeddedTemplates exposes the built-in component templates so callers can
// copy or extend them without importing the components package directly.
// Paths are rooted at "templates/".
func EmbeddedTemplates() fs.FS {
	return components.TemplatesFS()
}
