package components

import "github.com/goliatone/go-govuk/pkg/htmltag"

// DateInputItem is one of the day, month or year inputs.
type DateInputItem struct {
	ID           string             `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string             `json:"name" yaml:"name"`
	Label        string             `json:"label,omitempty" yaml:"label,omitempty"`
	Value        string             `json:"value,omitempty" yaml:"value,omitempty"`
	Classes      string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Autocomplete string             `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`
	Pattern      string             `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	InputMode    string             `json:"inputmode,omitempty" yaml:"inputmode,omitempty"`
	Attributes   htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// DateInputOptions configures a date input.
type DateInputOptions struct {
	ID           string               `json:"id" yaml:"id"`
	NamePrefix   string               `json:"namePrefix,omitempty" yaml:"namePrefix,omitempty"`
	Items        []DateInputItem      `json:"items,omitempty" yaml:"items,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Fieldset     *FieldsetOptions     `json:"fieldset,omitempty" yaml:"fieldset,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// DefaultDateInputItems returns the day, month and year items.
func DefaultDateInputItems() []DateInputItem {
	return []DateInputItem{
		{Name: "day", Classes: "govuk-input--width-2"},
		{Name: "month", Classes: "govuk-input--width-2"},
		{Name: "year", Classes: "govuk-input--width-4"},
	}
}

// DateInput renders a group of date part inputs. Without items the default
// day, month and year items are used. Item names are joined to NamePrefix
// with "-", item ids to ID the same way.
func (g *Generator) DateInput(opts DateInputOptions) (string, error) {
	parts, err := g.fieldChrome(opts.ID, opts.Hint, opts.ErrorMessage)
	if err != nil {
		return "", err
	}

	source := opts.Items
	if len(source) == 0 {
		source = DefaultDateInputItems()
	}
	items := make([]string, 0, len(source))
	for _, item := range source {
		name := item.Name
		if opts.NamePrefix != "" {
			name = opts.NamePrefix + "-" + item.Name
		}
		markup, err := g.Input(InputOptions{
			ID:           firstNonEmpty(item.ID, opts.ID+"-"+item.Name),
			Name:         name,
			Type:         "text",
			InputMode:    firstNonEmpty(item.InputMode, "numeric"),
			Value:        item.Value,
			Classes:      joinClasses("govuk-date-input__input", item.Classes),
			Autocomplete: item.Autocomplete,
			Pattern:      item.Pattern,
			Attributes:   item.Attributes,
			Label: &LabelOptions{
				Content: Content{Text: firstNonEmpty(item.Label, capitalize(item.Name))},
				Classes: "govuk-date-input__label",
			},
		})
		if err != nil {
			return "", err
		}
		items = append(items, markup)
	}

	var container htmltag.Attributes
	container.AddClass("govuk-date-input", opts.Classes)
	container.SetIf("id", opts.ID)
	container = container.Merge(opts.Attributes)

	view := map[string]any{
		"groupAttrs":     formGroupAttrs(opts.FormGroup, parts.hasError()).String(),
		"hint":           parts.hint,
		"errorMessage":   parts.errorMsg,
		"containerAttrs": container.String(),
		"items":          items,
	}
	if opts.Fieldset != nil {
		fieldset := *opts.Fieldset
		fieldset.Role = firstNonEmpty(fieldset.Role, "group")
		view["fieldset"] = g.fieldsetView(&fieldset, describedBy(parts.hintID, parts.errorID))
	}
	return g.renderTemplate(NameDateInput, view)
}
