package components

import (
	"strconv"

	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// InputOptions configures a text input.
type InputOptions struct {
	ID           string               `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Type         string               `json:"type,omitempty" yaml:"type,omitempty"`
	InputMode    string               `json:"inputmode,omitempty" yaml:"inputmode,omitempty"`
	Value        string               `json:"value,omitempty" yaml:"value,omitempty"`
	Disabled     bool                 `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Label        *LabelOptions        `json:"label,omitempty" yaml:"label,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	Prefix       *AffixOptions        `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix       *AffixOptions        `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Autocomplete string               `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`
	Pattern      string               `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Spellcheck   *bool                `json:"spellcheck,omitempty" yaml:"spellcheck,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Input renders a text input inside a form group.
func (g *Generator) Input(opts InputOptions) (string, error) {
	id := firstNonEmpty(opts.ID, opts.Name)
	parts, err := g.fieldChrome(id, opts.Hint, opts.ErrorMessage)
	if err != nil {
		return "", err
	}
	label, err := g.controlLabel(opts.Label, id)
	if err != nil {
		return "", err
	}

	var attrs htmltag.Attributes
	attrs.AddClass("govuk-input", opts.Classes)
	if parts.hasError() {
		attrs.AddClass("govuk-input--error")
	}
	attrs.Set("id", id)
	attrs.Set("name", opts.Name)
	attrs.Set("type", firstNonEmpty(opts.Type, "text"))
	setSpellcheck(&attrs, opts.Spellcheck)
	attrs.SetIf("value", opts.Value)
	attrs.SetBool("disabled", opts.Disabled)
	attrs.SetIf("aria-describedby", describedBy(opts.DescribedBy, parts.hintID, parts.errorID))
	attrs.SetIf("autocomplete", opts.Autocomplete)
	attrs.SetIf("pattern", opts.Pattern)
	attrs.SetIf("inputmode", opts.InputMode)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameInput, map[string]any{
		"groupAttrs":   formGroupAttrs(opts.FormGroup, parts.hasError()).String(),
		"label":        label,
		"hint":         parts.hint,
		"errorMessage": parts.errorMsg,
		"prefix":       g.affix(opts.Prefix, "govuk-input__prefix"),
		"suffix":       g.affix(opts.Suffix, "govuk-input__suffix"),
		"inputAttrs":   attrs.String(),
	})
}

func (g *Generator) affix(affix *AffixOptions, class string) string {
	if affix == nil || affix.IsZero() {
		return ""
	}
	return htmltag.New("div").
		Class(class, affix.Classes).
		Attr("aria-hidden", "true").
		MergeAttrs(affix.Attributes).
		HTML(g.content(affix.Content)).
		String()
}

func (g *Generator) controlLabel(label *LabelOptions, id string) (string, error) {
	if label == nil {
		return "", nil
	}
	opts := *label
	opts.For = firstNonEmpty(opts.For, id)
	return g.Label(opts)
}

func setSpellcheck(attrs *htmltag.Attributes, spellcheck *bool) {
	if spellcheck == nil {
		return
	}
	attrs.Set("spellcheck", strconv.FormatBool(*spellcheck))
}

// TextareaOptions configures a textarea.
type TextareaOptions struct {
	ID           string               `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Rows         int                  `json:"rows,omitempty" yaml:"rows,omitempty"`
	Value        string               `json:"value,omitempty" yaml:"value,omitempty"`
	Disabled     bool                 `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Label        *LabelOptions        `json:"label,omitempty" yaml:"label,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Autocomplete string               `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`
	Spellcheck   *bool                `json:"spellcheck,omitempty" yaml:"spellcheck,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Textarea renders a textarea inside a form group. Rows default to 5.
func (g *Generator) Textarea(opts TextareaOptions) (string, error) {
	id := firstNonEmpty(opts.ID, opts.Name)
	parts, err := g.fieldChrome(id, opts.Hint, opts.ErrorMessage)
	if err != nil {
		return "", err
	}
	label, err := g.controlLabel(opts.Label, id)
	if err != nil {
		return "", err
	}

	rows := opts.Rows
	if rows <= 0 {
		rows = 5
	}

	var attrs htmltag.Attributes
	attrs.AddClass("govuk-textarea")
	if parts.hasError() {
		attrs.AddClass("govuk-textarea--error")
	}
	attrs.AddClass(opts.Classes)
	attrs.Set("id", id)
	attrs.Set("name", opts.Name)
	attrs.Set("rows", strconv.Itoa(rows))
	setSpellcheck(&attrs, opts.Spellcheck)
	attrs.SetBool("disabled", opts.Disabled)
	attrs.SetIf("aria-describedby", describedBy(opts.DescribedBy, parts.hintID, parts.errorID))
	attrs.SetIf("autocomplete", opts.Autocomplete)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameTextarea, map[string]any{
		"groupAttrs":    formGroupAttrs(opts.FormGroup, parts.hasError()).String(),
		"label":         label,
		"hint":          parts.hint,
		"errorMessage":  parts.errorMsg,
		"textareaAttrs": attrs.String(),
		"value":         opts.Value,
	})
}

// SelectItem is one option of a select list.
type SelectItem struct {
	Value      string             `json:"value" yaml:"value"`
	Text       string             `json:"text" yaml:"text"`
	Selected   bool               `json:"selected,omitempty" yaml:"selected,omitempty"`
	Disabled   bool               `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// SelectOptions configures a select list.
type SelectOptions struct {
	ID           string               `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Items        []SelectItem         `json:"items,omitempty" yaml:"items,omitempty"`
	Value        string               `json:"value,omitempty" yaml:"value,omitempty"`
	Disabled     bool                 `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Label        *LabelOptions        `json:"label,omitempty" yaml:"label,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Select renders a select list. An item is selected when it says so or when
// its value equals the select's value.
func (g *Generator) Select(opts SelectOptions) (string, error) {
	id := firstNonEmpty(opts.ID, opts.Name)
	parts, err := g.fieldChrome(id, opts.Hint, opts.ErrorMessage)
	if err != nil {
		return "", err
	}
	label, err := g.controlLabel(opts.Label, id)
	if err != nil {
		return "", err
	}

	var attrs htmltag.Attributes
	attrs.AddClass("govuk-select", opts.Classes)
	if parts.hasError() {
		attrs.AddClass("govuk-select--error")
	}
	attrs.Set("id", id)
	attrs.Set("name", opts.Name)
	attrs.SetBool("disabled", opts.Disabled)
	attrs.SetIf("aria-describedby", describedBy(opts.DescribedBy, parts.hintID, parts.errorID))
	attrs = attrs.Merge(opts.Attributes)

	items := make([]map[string]any, 0, len(opts.Items))
	for _, item := range opts.Items {
		var itemAttrs htmltag.Attributes
		itemAttrs.Set("value", item.Value)
		itemAttrs.SetBool("selected", item.Selected || (opts.Value != "" && item.Value == opts.Value))
		itemAttrs.SetBool("disabled", item.Disabled)
		itemAttrs = itemAttrs.Merge(item.Attributes)
		items = append(items, map[string]any{
			"attrs": itemAttrs.String(),
			"text":  item.Text,
		})
	}

	return g.renderTemplate(NameSelect, map[string]any{
		"groupAttrs":   formGroupAttrs(opts.FormGroup, parts.hasError()).String(),
		"label":        label,
		"hint":         parts.hint,
		"errorMessage": parts.errorMsg,
		"selectAttrs":  attrs.String(),
		"items":        items,
	})
}

// FileUploadOptions configures a file input.
type FileUploadOptions struct {
	ID           string               `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string               `json:"name" yaml:"name"`
	Value        string               `json:"value,omitempty" yaml:"value,omitempty"`
	Disabled     bool                 `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	DescribedBy  string               `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Label        *LabelOptions        `json:"label,omitempty" yaml:"label,omitempty"`
	Hint         *HintOptions         `json:"hint,omitempty" yaml:"hint,omitempty"`
	ErrorMessage *ErrorMessageOptions `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	FormGroup    *FormGroupOptions    `json:"formGroup,omitempty" yaml:"formGroup,omitempty"`
	Classes      string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// FileUpload renders a file input inside a form group.
func (g *Generator) FileUpload(opts FileUploadOptions) (string, error) {
	id := firstNonEmpty(opts.ID, opts.Name)
	parts, err := g.fieldChrome(id, opts.Hint, opts.ErrorMessage)
	if err != nil {
		return "", err
	}
	label, err := g.controlLabel(opts.Label, id)
	if err != nil {
		return "", err
	}

	var attrs htmltag.Attributes
	attrs.AddClass("govuk-file-upload", opts.Classes)
	if parts.hasError() {
		attrs.AddClass("govuk-file-upload--error")
	}
	attrs.Set("id", id)
	attrs.Set("name", opts.Name)
	attrs.Set("type", "file")
	attrs.SetIf("value", opts.Value)
	attrs.SetBool("disabled", opts.Disabled)
	attrs.SetIf("aria-describedby", describedBy(opts.DescribedBy, parts.hintID, parts.errorID))
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameFileUpload, map[string]any{
		"groupAttrs":   formGroupAttrs(opts.FormGroup, parts.hasError()).String(),
		"label":        label,
		"hint":         parts.hint,
		"errorMessage": parts.errorMsg,
		"inputAttrs":   attrs.String(),
	})
}
