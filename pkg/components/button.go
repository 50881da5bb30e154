package components

import "github.com/goliatone/go-govuk/pkg/htmltag"

// ButtonOptions configures a button. Setting Href renders a link styled as a
// button.
type ButtonOptions struct {
	Content            `yaml:",inline"`
	Element            string             `json:"element,omitempty" yaml:"element,omitempty"`
	Name               string             `json:"name,omitempty" yaml:"name,omitempty"`
	Type               string             `json:"type,omitempty" yaml:"type,omitempty"`
	Value              string             `json:"value,omitempty" yaml:"value,omitempty"`
	Href               string             `json:"href,omitempty" yaml:"href,omitempty"`
	Disabled           bool               `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	PreventDoubleClick bool               `json:"preventDoubleClick,omitempty" yaml:"preventDoubleClick,omitempty"`
	IsStartButton      bool               `json:"isStartButton,omitempty" yaml:"isStartButton,omitempty"`
	ID                 string             `json:"id,omitempty" yaml:"id,omitempty"`
	Classes            string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes         htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Button renders a button, or a link when Href is set.
func (g *Generator) Button(opts ButtonOptions) (string, error) {
	element := opts.Element
	if element == "" {
		element = "button"
		if opts.Href != "" {
			element = "a"
		}
	}

	var attrs htmltag.Attributes
	switch element {
	case "a":
		attrs.Set("href", firstNonEmpty(opts.Href, "#"))
		attrs.Set("role", "button")
		attrs.Set("draggable", "false")
	default:
		element = "button"
		attrs.Set("type", firstNonEmpty(opts.Type, "submit"))
		attrs.SetIf("name", opts.Name)
		attrs.SetIf("value", opts.Value)
		if opts.Disabled {
			attrs.SetBool("disabled", true)
			attrs.Set("aria-disabled", "true")
		}
	}
	attrs.AddClass("govuk-button", opts.Classes)
	if opts.Disabled {
		attrs.AddClass("govuk-button--disabled")
	}
	if opts.IsStartButton {
		attrs.AddClass("govuk-button--start")
	}
	attrs.Set("data-module", "govuk-button")
	if opts.PreventDoubleClick && element == "button" {
		attrs.Set("data-prevent-double-click", "true")
	}
	attrs.SetIf("id", opts.ID)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameButton, map[string]any{
		"element": element,
		"attrs":   attrs.String(),
		"content": g.content(opts.Content),
		"start":   opts.IsStartButton,
	})
}
