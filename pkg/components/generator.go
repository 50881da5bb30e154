package components

import (
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	rendertemplate "github.com/goliatone/go-govuk/pkg/render/template"
	"github.com/goliatone/go-govuk/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.Renderer
	registry         *Registry
	policy           *bluemonday.Policy
	selection        *theme.Selection
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
	logger           zerolog.Logger
}

// WithTemplatesFS replaces the embedded template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk ahead of the
// embedded bundle, so individual templates can be overridden by path.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer renders component templates through renderer instead
// of the bundled pongo2 engine. Paths look like "templates/<name>.tmpl"
// unless a theme partial replaces them; the data is {"params": view}.
func WithTemplateRenderer(renderer rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry sets the registry used by Render. Defaults to
// DefaultRegistry().
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithSanitizeHTML runs every html option through the default policy.
func WithSanitizeHTML(enabled bool) Option {
	return func(cfg *config) {
		if enabled {
			cfg.policy = defaultPolicy()
			return
		}
		cfg.policy = nil
	}
}

// WithHTMLPolicy runs every html option through policy.
func WithHTMLPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// WithThemeSelection uses the partials of an already resolved theme.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.selection = selection
	}
}

// WithThemeSelector resolves name/variant through selector when the
// generator is constructed.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Generator renders GOV.UK Design System components. It is safe for
// concurrent use once constructed.
type Generator struct {
	templates rendertemplate.Renderer
	registry  *Registry
	policy    *bluemonday.Policy
	partials  map[string]string
	logger    zerolog.Logger
}

// New constructs a generator applying any provided options.
func New(options ...Option) (*Generator, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	gotemplate.InstallFilters()

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		}
		if cfg.templatesDir != "" {
			if _, err := os.Stat(cfg.templatesDir); err != nil {
				return nil, fmt.Errorf("components: templates dir: %w", err)
			}
			engineOptions = append(engineOptions, gotemplate.WithBaseDir(cfg.templatesDir))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("components: configure template renderer: %w", err)
		}
		renderer = engine
	}

	selection := cfg.selection
	if selection == nil && cfg.selector != nil {
		selected, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("components: select theme %q: %w", cfg.themeName, err)
		}
		selection = selected
	}

	registry := cfg.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	partials := themePartials(selection)
	if len(partials) > 0 {
		cfg.logger.Debug().
			Str("theme", selection.Theme).
			Str("variant", selection.Variant).
			Int("partials", len(partials)).
			Msg("using theme partials")
	}

	return &Generator{
		templates: renderer,
		registry:  registry,
		policy:    cfg.policy,
		partials:  partials,
		logger:    cfg.logger,
	}, nil
}

// Registry returns the registry used by Render.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// Render decodes options for the named component and renders it.
func (g *Generator) Render(name string, decode Decoder) (string, error) {
	descriptor, ok := g.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("components: %w: %q", ErrUnknownComponent, name)
	}
	out, err := descriptor.Render(g, decode)
	if err != nil {
		return "", fmt.Errorf("components: render %q: %w", descriptor.Name, err)
	}
	return out, nil
}

// RenderJSON renders the named component from JSON options.
func (g *Generator) RenderJSON(name string, data []byte) (string, error) {
	return g.Render(name, JSONDecoder(data))
}

// RenderYAML renders the named component from YAML options.
func (g *Generator) RenderYAML(name string, data []byte) (string, error) {
	return g.Render(name, YAMLDecoder(data))
}

func (g *Generator) renderTemplate(name string, view map[string]any) (string, error) {
	if g.templates == nil {
		return "", fmt.Errorf("components: template renderer is nil")
	}
	path := g.templatePath(name)
	out, err := g.templates.RenderTemplate(path, map[string]any{"params": view})
	if err != nil {
		return "", fmt.Errorf("components: render template %q: %w", path, err)
	}
	return strings.TrimSpace(out), nil
}

func (g *Generator) templatePath(name string) string {
	if path, ok := g.partials[name]; ok {
		return path
	}
	return "templates/" + name + ".tmpl"
}

// content returns html when set (sanitised when a policy is configured),
// otherwise the escaped text.
func (g *Generator) content(c Content) string {
	if c.HTML != "" {
		return g.sanitize(c.HTML)
	}
	return html.EscapeString(c.Text)
}

// contentOr falls back to the escaped text fallback when c is empty.
func (g *Generator) contentOr(c Content, fallback string) string {
	if c.IsZero() {
		return html.EscapeString(fallback)
	}
	return g.content(c)
}
