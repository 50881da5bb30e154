// Package gotemplate renders pongo2 templates loaded from a directory on
// disk, an fs.FS bundle, or both. Template data is flattened to JSON shapes
// before execution so struct fields are addressed by their json names.
package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-govuk/pkg/render/template"
)

// ErrNoSource is returned by New when neither a directory nor an fs.FS was
// configured.
var ErrNoSource = errors.New("gotemplate: no template source configured")

const defaultExtension = ".tmpl"

// Option configures an Engine.
type Option func(*options)

type options struct {
	dir     string
	bundle  fs.FS
	ext     string
	globals map[string]any
}

// WithBaseDir adds a directory loader. It is consulted before the fs.FS so
// single templates can be overridden on disk.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.dir = strings.TrimSpace(dir) }
}

// WithFS adds an fs.FS loader.
func WithFS(bundle fs.FS) Option {
	return func(o *options) { o.bundle = bundle }
}

// WithExtension sets the suffix appended to template names that lack it.
// A leading dot is added when missing; blank values are ignored.
func WithExtension(ext string) Option {
	return func(o *options) {
		ext = strings.TrimSpace(ext)
		switch {
		case ext == "":
		case ext[0] == '.':
			o.ext = ext
		default:
			o.ext = "." + ext
		}
	}
}

// WithGlobals makes values available to every template.
func WithGlobals(values map[string]any) Option {
	return func(o *options) {
		if o.globals == nil {
			o.globals = map[string]any{}
		}
		for k, v := range values {
			o.globals[k] = v
		}
	}
}

// Engine is a template.TemplateRenderer backed by a pongo2 TemplateSet.
// Compiled templates are kept for the life of the engine. It is safe for
// concurrent use.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	// globalsMu guards set.Globals, which pongo2 reads on every execution.
	globalsMu sync.RWMutex

	cacheMu sync.Mutex
	cache   map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. At least one of WithBaseDir and WithFS is required.
func New(opts ...Option) (*Engine, error) {
	o := options{ext: defaultExtension}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	loaders, err := o.loaders()
	if err != nil {
		return nil, err
	}

	InstallFilters()

	e := &Engine{
		set:   pongo2.NewSet("govuk", loaders...),
		ext:   o.ext,
		cache: map[string]*pongo2.Template{},
	}
	if len(o.globals) > 0 {
		if err := e.GlobalContext(o.globals); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (o options) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if o.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(o.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", o.dir, err)
		}
		loaders = append(loaders, local)
	}
	if o.bundle != nil {
		loaders = append(loaders, pongo2.NewFSLoader(o.bundle))
	}
	if len(loaders) == 0 {
		return nil, ErrNoSource
	}
	return loaders, nil
}

// Render treats nameOrContent as an inline template when it contains pongo2
// tags and as a template name otherwise.
func (e *Engine) Render(nameOrContent string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(nameOrContent, "{{") || strings.Contains(nameOrContent, "{%") {
		return e.RenderString(nameOrContent, data, out...)
	}
	return e.RenderTemplate(nameOrContent, data, out...)
}

// RenderTemplate renders a template by name, adding the engine extension
// when the name lacks it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.run(tpl, "template "+name, data, out)
}

// RenderString compiles and renders content. Inline templates are not
// cached.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: compile inline template: %w", err)
	}
	return e.run(tpl, "inline template", data, out)
}

// RegisterFilter adds a filter by name. pongo2 filters are global to the
// process, so a name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter needs a name and a function")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q is already registered", name)
	}
	return pongo2.RegisterFilter(name, adaptFilter(name, fn))
}

// GlobalContext merges data into the values every template can read. data
// may be a map or any JSON-encodable struct.
func (e *Engine) GlobalContext(data any) error {
	if data == nil {
		return nil
	}
	values, err := toContext(data)
	if err != nil {
		return fmt.Errorf("gotemplate: global context: %w", err)
	}

	e.globalsMu.Lock()
	defer e.globalsMu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(values)
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %q: %w", name, err)
	}
	e.cache[name] = tpl
	return tpl, nil
}

func (e *Engine) run(tpl *pongo2.Template, what string, data any, out []io.Writer) (string, error) {
	values, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %s data: %w", what, err)
	}

	var buf bytes.Buffer
	e.globalsMu.RLock()
	err = tpl.ExecuteWriter(values, &buf)
	e.globalsMu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", what, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return rendered, fmt.Errorf("gotemplate: write %s: %w", what, err)
		}
	}
	return rendered, nil
}
