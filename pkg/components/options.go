package components

import "github.com/goliatone/go-govuk/pkg/htmltag"

// Content is the text/html pair most components accept. HTML wins when both
// are set.
type Content struct {
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	HTML string `json:"html,omitempty" yaml:"html,omitempty"`
}

// IsZero reports whether neither text nor html is set.
func (c Content) IsZero() bool {
	return c.Text == "" && c.HTML == ""
}

// LabelOptions configures a form control label.
type LabelOptions struct {
	Content       `yaml:",inline"`
	For           string             `json:"for,omitempty" yaml:"for,omitempty"`
	IsPageHeading bool               `json:"isPageHeading,omitempty" yaml:"isPageHeading,omitempty"`
	Classes       string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes    htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// HintOptions configures hint text.
type HintOptions struct {
	Content    `yaml:",inline"`
	ID         string             `json:"id,omitempty" yaml:"id,omitempty"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ErrorMessageOptions configures an inline error message.
type ErrorMessageOptions struct {
	Content            `yaml:",inline"`
	ID                 string             `json:"id,omitempty" yaml:"id,omitempty"`
	Classes            string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	VisuallyHiddenText string             `json:"visuallyHiddenText,omitempty" yaml:"visuallyHiddenText,omitempty"`
	Attributes         htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// FormGroupOptions configures the wrapper around a form control.
type FormGroupOptions struct {
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// LegendOptions configures a fieldset legend.
type LegendOptions struct {
	Content       `yaml:",inline"`
	Classes       string `json:"classes,omitempty" yaml:"classes,omitempty"`
	IsPageHeading bool   `json:"isPageHeading,omitempty" yaml:"isPageHeading,omitempty"`
}

// FieldsetOptions configures a fieldset. When used standalone the embedded
// content becomes the fieldset body.
type FieldsetOptions struct {
	Content     `yaml:",inline"`
	DescribedBy string             `json:"describedBy,omitempty" yaml:"describedBy,omitempty"`
	Legend      *LegendOptions     `json:"legend,omitempty" yaml:"legend,omitempty"`
	Classes     string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Role        string             `json:"role,omitempty" yaml:"role,omitempty"`
	Attributes  htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// AffixOptions configures an input prefix or suffix.
type AffixOptions struct {
	Content    `yaml:",inline"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}
