package components

import (
	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// ErrorMessage renders an inline error message. Empty options render nothing.
func (g *Generator) ErrorMessage(opts ErrorMessageOptions) (string, error) {
	if opts.IsZero() {
		return "", nil
	}
	prefix := firstNonEmpty(opts.VisuallyHiddenText, "Error")
	tag := htmltag.New("p").
		AttrIf("id", opts.ID).
		Class("govuk-error-message", opts.Classes).
		MergeAttrs(opts.Attributes).
		Append(htmltag.New("span").Class("govuk-visually-hidden").Text(prefix + ":")).
		Text(" ").
		HTML(g.content(opts.Content))
	return tag.String(), nil
}

// Hint renders hint text. Empty options render nothing.
func (g *Generator) Hint(opts HintOptions) (string, error) {
	if opts.IsZero() {
		return "", nil
	}
	tag := htmltag.New("div").
		AttrIf("id", opts.ID).
		Class("govuk-hint", opts.Classes).
		MergeAttrs(opts.Attributes).
		HTML(g.content(opts.Content))
	return tag.String(), nil
}

// Label renders a label, wrapped in a heading when it is the page heading.
func (g *Generator) Label(opts LabelOptions) (string, error) {
	if opts.IsZero() {
		return "", nil
	}
	label := htmltag.New("label").
		Class("govuk-label", opts.Classes).
		AttrIf("for", opts.For).
		MergeAttrs(opts.Attributes).
		HTML(g.content(opts.Content))
	if opts.IsPageHeading {
		return htmltag.New("h1").Class("govuk-label-wrapper").Append(label).String(), nil
	}
	return label.String(), nil
}

// TagOptions configures a status tag.
type TagOptions struct {
	Content    `yaml:",inline"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Tag renders a status tag.
func (g *Generator) Tag(opts TagOptions) (string, error) {
	tag := htmltag.New("strong").
		Class("govuk-tag", opts.Classes).
		MergeAttrs(opts.Attributes).
		HTML(g.content(opts.Content))
	return tag.String(), nil
}

// LinkOptions configures the single-link components.
type LinkOptions struct {
	Content    `yaml:",inline"`
	Href       string             `json:"href,omitempty" yaml:"href,omitempty"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// BackLinkOptions configures a back link.
type BackLinkOptions = LinkOptions

// SkipLinkOptions configures a skip link.
type SkipLinkOptions = LinkOptions

// BackLink renders a back link. Defaults to "Back" pointing at "#".
func (g *Generator) BackLink(opts BackLinkOptions) (string, error) {
	tag := htmltag.New("a").
		Attr("href", firstNonEmpty(opts.Href, "#")).
		Class("govuk-back-link", opts.Classes).
		MergeAttrs(opts.Attributes).
		HTML(g.contentOr(opts.Content, "Back"))
	return tag.String(), nil
}

// SkipLink renders a skip link. Defaults to "Skip to main content" pointing
// at "#content".
func (g *Generator) SkipLink(opts SkipLinkOptions) (string, error) {
	tag := htmltag.New("a").
		Attr("href", firstNonEmpty(opts.Href, "#content")).
		Class("govuk-skip-link", opts.Classes).
		Attr("data-module", "govuk-skip-link").
		MergeAttrs(opts.Attributes).
		HTML(g.contentOr(opts.Content, "Skip to main content"))
	return tag.String(), nil
}

// InsetTextOptions configures inset text.
type InsetTextOptions struct {
	Content    `yaml:",inline"`
	ID         string             `json:"id,omitempty" yaml:"id,omitempty"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// InsetText renders inset text.
func (g *Generator) InsetText(opts InsetTextOptions) (string, error) {
	tag := htmltag.New("div").
		AttrIf("id", opts.ID).
		Class("govuk-inset-text", opts.Classes).
		MergeAttrs(opts.Attributes).
		HTML(g.content(opts.Content))
	return tag.String(), nil
}
