package components

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Canonical component names used by the default registry and the template
// bundle.
const (
	NameBackLink     = "back-link"
	NameBreadcrumbs  = "breadcrumbs"
	NameButton       = "button"
	NameCheckboxes   = "checkboxes"
	NameDateInput    = "date-input"
	NameDetails      = "details"
	NameErrorMessage = "error-message"
	NameErrorSummary = "error-summary"
	NameFieldset     = "fieldset"
	NameFileUpload   = "file-upload"
	NameHint         = "hint"
	NameInsetText    = "inset-text"
	NameInput        = "input"
	NameLabel        = "label"
	NamePanel        = "panel"
	NamePhaseBanner  = "phase-banner"
	NameRadios       = "radios"
	NameSelect       = "select"
	NameSkipLink     = "skip-link"
	NameTable        = "table"
	NameTag          = "tag"
	NameTextarea     = "textarea"
	NameWarningText  = "warning-text"
)

var (
	// ErrUnknownComponent is returned when rendering a name nothing is
	// registered under.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrDuplicateComponent is returned when registering a name twice.
	ErrDuplicateComponent = errors.New("component already registered")
)

// Decoder fills a component options struct.
type Decoder func(out any) error

// JSONDecoder decodes options from JSON. Empty input leaves the zero value.
func JSONDecoder(data []byte) Decoder {
	return func(out any) error {
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode json options: %w", err)
		}
		return nil
	}
}

// YAMLDecoder decodes options from YAML. Empty input leaves the zero value.
func YAMLDecoder(data []byte) Decoder {
	return func(out any) error {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode yaml options: %w", err)
		}
		return nil
	}
}

// NodeDecoder decodes options from an already parsed YAML node.
func NodeDecoder(node *yaml.Node) Decoder {
	return func(out any) error {
		if node == nil || node.Kind == 0 {
			return nil
		}
		if err := node.Decode(out); err != nil {
			return fmt.Errorf("decode yaml options: %w", err)
		}
		return nil
	}
}

// RenderFunc renders a component from decoded options.
type RenderFunc func(g *Generator, decode Decoder) (string, error)

// Descriptor binds a component name to its renderer.
type Descriptor struct {
	Name        string
	Description string
	Render      RenderFunc
}

// Define builds a descriptor for a component whose options decode into T.
func Define[T any](name, description string, render func(*Generator, T) (string, error)) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Render: func(g *Generator, decode Decoder) (string, error) {
			var opts T
			if decode != nil {
				if err := decode(&opts); err != nil {
					return "", err
				}
			}
			return render(g, opts)
		},
	}
}

// Registry tracks component descriptors keyed by name.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// DefaultRegistry returns a fresh registry holding every built-in component.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, descriptor := range builtins() {
		registry.MustRegister(descriptor)
	}
	return registry
}

// Register adds a descriptor. Names are case-insensitive and must be unique.
func (r *Registry) Register(descriptor Descriptor) error {
	name := normalize(descriptor.Name)
	if name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Render == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; exists {
		return fmt.Errorf("components: %w: %q", ErrDuplicateComponent, name)
	}
	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(descriptor Descriptor) {
	if err := r.Register(descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	return descriptor, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Descriptor(name)
	return ok
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func builtins() []Descriptor {
	return []Descriptor{
		Define(NameBackLink, "Link back to the previous page", (*Generator).BackLink),
		Define(NameBreadcrumbs, "Navigation trail", (*Generator).Breadcrumbs),
		Define(NameButton, "Button or button-styled link", (*Generator).Button),
		Define(NameCheckboxes, "Checkbox group", (*Generator).Checkboxes),
		Define(NameDateInput, "Day, month and year inputs", (*Generator).DateInput),
		Define(NameDetails, "Expandable details", (*Generator).Details),
		Define(NameErrorMessage, "Inline error message", (*Generator).ErrorMessage),
		Define(NameErrorSummary, "Summary of page errors", (*Generator).ErrorSummary),
		Define(NameFieldset, "Fieldset with legend", (*Generator).Fieldset),
		Define(NameFileUpload, "File input", (*Generator).FileUpload),
		Define(NameHint, "Hint text", (*Generator).Hint),
		Define(NameInsetText, "Inset text", (*Generator).InsetText),
		Define(NameInput, "Text input", (*Generator).Input),
		Define(NameLabel, "Form control label", (*Generator).Label),
		Define(NamePanel, "Confirmation panel", (*Generator).Panel),
		Define(NamePhaseBanner, "Phase banner", (*Generator).PhaseBanner),
		Define(NameRadios, "Radio group", (*Generator).Radios),
		Define(NameSelect, "Select list", (*Generator).Select),
		Define(NameSkipLink, "Skip to main content link", (*Generator).SkipLink),
		Define(NameTable, "Data table", (*Generator).Table),
		Define(NameTag, "Status tag", (*Generator).Tag),
		Define(NameTextarea, "Multi-line text input", (*Generator).Textarea),
		Define(NameWarningText, "Warning text", (*Generator).WarningText),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
