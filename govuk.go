package govuk

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-govuk/pkg/binding"
	"github.com/goliatone/go-govuk/pkg/components"
	"github.com/goliatone/go-govuk/pkg/dateinput"
)

// ItemTypes aliases dateinput.ItemTypes for callers that only import the
// root package.
type ItemTypes = dateinput.ItemTypes

// ParseErrors aliases dateinput.ParseErrors.
type ParseErrors = dateinput.ParseErrors

// ModelState aliases binding.ModelState.
type ModelState = binding.ModelState

// Date aliases dateinput.Date, the calendar date model.
type Date = dateinput.Date

// NewGenerator builds a component generator from cfg. Options are applied
// after the ones derived from cfg so callers can override them.
func NewGenerator(cfg Config, options ...components.Option) (*components.Generator, error) {
	base := []components.Option{
		components.WithTemplatesDir(cfg.TemplatesDir),
		components.WithSanitizeHTML(cfg.SanitizeHTML),
	}
	return components.New(append(base, options...)...)
}

// WithThemeSelector resolves cfg's theme and variant through selector when
// passed to NewGenerator.
func WithThemeSelector(cfg Config, selector theme.ThemeSelector) components.Option {
	return components.WithThemeSelector(selector, cfg.Theme, cfg.Variant)
}

// NewBinder builds a date binder from cfg using a fresh default converter
// registry unless one is supplied in options.
func NewBinder(cfg Config, options ...binding.Option) *binding.Binder {
	base := []binding.Option{
		binding.WithAcceptMonthNames(cfg.AcceptMonthNamesInDateInputs),
	}
	return binding.New(append(base, options...)...)
}
