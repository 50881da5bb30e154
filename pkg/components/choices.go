package components

import (
	"slices"

	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// ChoiceItem is one checkbox or radio. Items with Divider set render a
// divider instead of an input.
type ChoiceItem struct {
	Content     `yaml:",inline"`
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Value       string             `json:"value,omitempty" yaml:"value,omitempty"`
	Label       *LabelOptions      `json:"label,omitempty" yaml:"label,omitempty"`
	Hint        *HintOptions       `json:"hint,omitempty" yaml:"hint,omitempty"`
	Divider     string             `json:"divider,omitempty" yaml:"divider,omitempty"`
	Checked     bool               `json:"checked,omitempty" yaml:"checked,omitempty"`
	Disabled    bool               `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Conditional *Content           `json:"conditional,omitempty" yaml:"conditional,omitempty"`
	Behaviour   string             `json:"behaviour,omitempty" yaml:"behaviour,omitempty"`
	Attributes  htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// CheckboxesOptions configures a checkbox group.
type CheckboxesOptions struct {
	IDPrefix     string               `json:"idPrefix,omitempty" yaml:"idPrefix,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Items        []ChoiceItem         `json:"items,omitempty" yaml:"items,omitempty"`
	Values       []string             `json:"values,omitempty" yaml:"values,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Fieldset     *FieldsetOptions     `json:"fieldset,omitempty" yaml:"fieldset,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// RadiosOptions configures a radio group.
type RadiosOptions struct {
	IDPrefix     string               `json:"idPrefix,omitempty" yaml:"idPrefix,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Items        []ChoiceItem         `json:"items,omitempty" yaml:"items,omitempty"`
	Value        string               `json:"value,omitempty" yaml:"value,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Fieldset     *FieldsetOptions     `json:"fieldset,omitempty" yaml:"fieldset,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type choiceGroup struct {
	kind         string
	inputType    string
	idPrefix     string
	name         string
	items        []ChoiceItem
	checked      func(ChoiceItem) bool
	describedBy  string
	fieldset     *FieldsetOptions
	hint         *HintOptions
	errorMessage *ErrorMessageOptions
	formGroup    *FormGroupOptions
	classes      string
	attributes   htmltag.Attributes
}

// Checkboxes renders a checkbox group. An item is checked when it says so or
// when its value is listed in Values.
func (g *Generator) Checkboxes(opts CheckboxesOptions) (string, error) {
	return g.renderChoices(NameCheckboxes, choiceGroup{
		kind:      "govuk-checkboxes",
		inputType: "checkbox",
		idPrefix:  firstNonEmpty(opts.IDPrefix, opts.Name),
		name:      opts.Name,
		items:     opts.Items,
		checked: func(item ChoiceItem) bool {
			return item.Checked || (item.Value != "" && slices.Contains(opts.Values, item.Value))
		},
		describedBy:  opts.DescribedBy,
		fieldset:     opts.Fieldset,
		hint:         opts.Hint,
		errorMessage: opts.ErrorMessage,
		formGroup:    opts.FormGroup,
		classes:      opts.Classes,
		attributes:   opts.Attributes,
	})
}

// Radios renders a radio group. An item is checked when it says so or when
// its value equals Value.
func (g *Generator) Radios(opts RadiosOptions) (string, error) {
	return g.renderChoices(NameRadios, choiceGroup{
		kind:      "govuk-radios",
		inputType: "radio",
		idPrefix:  firstNonEmpty(opts.IDPrefix, opts.Name),
		name:      opts.Name,
		items:     opts.Items,
		checked: func(item ChoiceItem) bool {
			return item.Checked || (opts.Value != "" && item.Value == opts.Value)
		},
		describedBy:  opts.DescribedBy,
		fieldset:     opts.Fieldset,
		hint:         opts.Hint,
		errorMessage: opts.ErrorMessage,
		formGroup:    opts.FormGroup,
		classes:      opts.Classes,
		attributes:   opts.Attributes,
	})
}

func (g *Generator) renderChoices(template string, group choiceGroup) (string, error) {
	parts, err := g.fieldChrome(group.idPrefix, group.hint, group.errorMessage)
	if err != nil {
		return "", err
	}
	groupDescribedBy := describedBy(group.describedBy, parts.hintID, parts.errorID)

	var container htmltag.Attributes
	container.AddClass(group.kind, group.classes)
	container.Set("data-module", group.kind)
	container = container.Merge(group.attributes)

	items := make([]map[string]any, 0, len(group.items))
	for index, item := range group.items {
		if item.Divider != "" {
			items = append(items, map[string]any{
				"divider": item.Divider,
				"class":   group.kind + "__divider",
			})
			continue
		}
		view, err := g.choiceItem(group, index, item, groupDescribedBy)
		if err != nil {
			return "", err
		}
		items = append(items, view)
	}

	view := map[string]any{
		"groupAttrs":     formGroupAttrs(group.formGroup, parts.hasError()).String(),
		"hint":           parts.hint,
		"errorMessage":   parts.errorMsg,
		"containerAttrs": container.String(),
		"items":          items,
	}
	if fieldset := g.fieldsetView(group.fieldset, groupDescribedBy); fieldset != nil {
		view["fieldset"] = fieldset
	}
	return g.renderTemplate(template, view)
}

func (g *Generator) choiceItem(group choiceGroup, index int, item ChoiceItem, groupDescribedBy string) (map[string]any, error) {
	id := firstNonEmpty(item.ID, itemID(group.idPrefix, index))
	checked := group.checked(item)

	hint := ""
	hintID := ""
	if item.Hint != nil && !item.Hint.IsZero() {
		opts := *item.Hint
		opts.ID = firstNonEmpty(opts.ID, id+"-item-hint")
		opts.Classes = joinClasses(group.kind+"__hint", opts.Classes)
		markup, err := g.Hint(opts)
		if err != nil {
			return nil, err
		}
		hint, hintID = markup, opts.ID
	}

	labelOpts := LabelOptions{Content: item.Content, For: id, Classes: group.kind + "__label"}
	if item.Label != nil {
		labelOpts.Classes = joinClasses(labelOpts.Classes, item.Label.Classes)
		labelOpts.Attributes = item.Label.Attributes
	}
	label, err := g.Label(labelOpts)
	if err != nil {
		return nil, err
	}

	conditionalID := ""
	if item.Conditional != nil && !item.Conditional.IsZero() {
		conditionalID = "conditional-" + id
	}

	var attrs htmltag.Attributes
	attrs.AddClass(group.kind + "__input")
	attrs.Set("id", id)
	attrs.Set("name", firstNonEmpty(item.Name, group.name))
	attrs.Set("type", group.inputType)
	attrs.Set("value", item.Value)
	attrs.SetBool("checked", checked)
	attrs.SetBool("disabled", item.Disabled)
	attrs.SetIf("data-aria-controls", conditionalID)
	if group.inputType == "checkbox" {
		attrs.SetIf("data-behaviour", item.Behaviour)
	}
	itemDescribedBy := hintID
	if group.fieldset == nil {
		itemDescribedBy = describedBy(groupDescribedBy, hintID)
	}
	attrs.SetIf("aria-describedby", itemDescribedBy)
	attrs = attrs.Merge(item.Attributes)

	view := map[string]any{
		"class":      group.kind + "__item",
		"inputAttrs": attrs.String(),
		"label":      label,
		"hint":       hint,
	}
	if conditionalID != "" {
		var conditional htmltag.Attributes
		conditional.AddClass(group.kind + "__conditional")
		if !checked {
			conditional.AddClass(group.kind + "__conditional--hidden")
		}
		conditional.Set("id", conditionalID)
		view["conditionalAttrs"] = conditional.String()
		view["conditional"] = g.content(*item.Conditional)
	}
	return view, nil
}
