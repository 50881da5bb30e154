package components

import (
	"strconv"

	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Content    `yaml:",inline"`
	Href       string             `json:"href,omitempty" yaml:"href,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// BreadcrumbsOptions configures a breadcrumb trail.
type BreadcrumbsOptions struct {
	Items            []BreadcrumbItem   `json:"items" yaml:"items"`
	CollapseOnMobile bool               `json:"collapseOnMobile,omitempty" yaml:"collapseOnMobile,omitempty"`
	LabelText        string             `json:"labelText,omitempty" yaml:"labelText,omitempty"`
	Classes          string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes       htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Breadcrumbs renders a breadcrumb trail. Items without a link are marked as
// the current page.
func (g *Generator) Breadcrumbs(opts BreadcrumbsOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-breadcrumbs", opts.Classes)
	if opts.CollapseOnMobile {
		attrs.AddClass("govuk-breadcrumbs--collapse-on-mobile")
	}
	attrs.Set("aria-label", firstNonEmpty(opts.LabelText, "Breadcrumb"))
	attrs = attrs.Merge(opts.Attributes)

	items := make([]string, 0, len(opts.Items))
	for _, item := range opts.Items {
		li := htmltag.New("li").Class("govuk-breadcrumbs__list-item")
		if item.Href != "" {
			li.Append(htmltag.New("a").
				Class("govuk-breadcrumbs__link").
				Attr("href", item.Href).
				MergeAttrs(item.Attributes).
				HTML(g.content(item.Content)))
		} else {
			li.Attr("aria-current", "page").HTML(g.content(item.Content))
		}
		items = append(items, li.String())
	}

	return g.renderTemplate(NameBreadcrumbs, map[string]any{
		"attrs": attrs.String(),
		"items": items,
	})
}

// DetailsOptions configures an expandable details element.
type DetailsOptions struct {
	Content     `yaml:",inline"`
	SummaryText string             `json:"summaryText,omitempty" yaml:"summaryText,omitempty"`
	SummaryHTML string             `json:"summaryHtml,omitempty" yaml:"summaryHtml,omitempty"`
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Open        bool               `json:"open,omitempty" yaml:"open,omitempty"`
	Classes     string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes  htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Details renders an expandable details element.
func (g *Generator) Details(opts DetailsOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-details", opts.Classes)
	attrs.SetIf("id", opts.ID)
	attrs.SetBool("open", opts.Open)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameDetails, map[string]any{
		"attrs":   attrs.String(),
		"summary": g.content(Content{Text: opts.SummaryText, HTML: opts.SummaryHTML}),
		"content": g.content(opts.Content),
	})
}

// ErrorSummaryItem links to a field with an error.
type ErrorSummaryItem struct {
	Content    `yaml:",inline"`
	Href       string             `json:"href,omitempty" yaml:"href,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ErrorSummaryOptions configures the error summary.
type ErrorSummaryOptions struct {
	TitleText        string             `json:"titleText,omitempty" yaml:"titleText,omitempty"`
	TitleHTML        string             `json:"titleHtml,omitempty" yaml:"titleHtml,omitempty"`
	DescriptionText  string             `json:"descriptionText,omitempty" yaml:"descriptionText,omitempty"`
	DescriptionHTML  string             `json:"descriptionHtml,omitempty" yaml:"descriptionHtml,omitempty"`
	ErrorList        []ErrorSummaryItem `json:"errorList,omitempty" yaml:"errorList,omitempty"`
	DisableAutoFocus bool               `json:"disableAutoFocus,omitempty" yaml:"disableAutoFocus,omitempty"`
	Classes          string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes       htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ErrorSummary renders the summary shown at the top of a page with errors.
// The title defaults to "There is a problem".
func (g *Generator) ErrorSummary(opts ErrorSummaryOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-error-summary", opts.Classes)
	if opts.DisableAutoFocus {
		attrs.Set("data-disable-auto-focus", "true")
	}
	attrs.Set("data-module", "govuk-error-summary")
	attrs = attrs.Merge(opts.Attributes)

	items := make([]string, 0, len(opts.ErrorList))
	for _, item := range opts.ErrorList {
		li := htmltag.New("li")
		if item.Href != "" {
			li.Append(htmltag.New("a").
				Attr("href", item.Href).
				MergeAttrs(item.Attributes).
				HTML(g.content(item.Content)))
		} else {
			li.HTML(g.content(item.Content))
		}
		items = append(items, li.String())
	}

	return g.renderTemplate(NameErrorSummary, map[string]any{
		"attrs":       attrs.String(),
		"title":       g.contentOr(Content{Text: opts.TitleText, HTML: opts.TitleHTML}, "There is a problem"),
		"description": g.content(Content{Text: opts.DescriptionText, HTML: opts.DescriptionHTML}),
		"items":       items,
	})
}

// Fieldset renders a standalone fieldset around the options' content.
func (g *Generator) Fieldset(opts FieldsetOptions) (string, error) {
	view := g.fieldsetView(&opts, "")
	view["content"] = g.content(opts.Content)
	return g.renderTemplate(NameFieldset, view)
}

// PanelOptions configures a confirmation panel.
type PanelOptions struct {
	Content      `yaml:",inline"`
	TitleText    string             `json:"titleText,omitempty" yaml:"titleText,omitempty"`
	TitleHTML    string             `json:"titleHtml,omitempty" yaml:"titleHtml,omitempty"`
	HeadingLevel int                `json:"headingLevel,omitempty" yaml:"headingLevel,omitempty"`
	Classes      string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes   htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Panel renders a confirmation panel. The heading level defaults to 1.
func (g *Generator) Panel(opts PanelOptions) (string, error) {
	level := opts.HeadingLevel
	if level < 1 || level > 6 {
		level = 1
	}
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-panel govuk-panel--confirmation", opts.Classes)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NamePanel, map[string]any{
		"attrs":   attrs.String(),
		"heading": "h" + strconv.Itoa(level),
		"title":   g.content(Content{Text: opts.TitleText, HTML: opts.TitleHTML}),
		"content": g.content(opts.Content),
	})
}

// PhaseBannerOptions configures a phase banner.
type PhaseBannerOptions struct {
	Content    `yaml:",inline"`
	Tag        TagOptions         `json:"tag" yaml:"tag"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// PhaseBanner renders a phase banner with its tag.
func (g *Generator) PhaseBanner(opts PhaseBannerOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-phase-banner", opts.Classes)
	attrs = attrs.Merge(opts.Attributes)

	tagOpts := opts.Tag
	tagOpts.Classes = joinClasses("govuk-phase-banner__content__tag", tagOpts.Classes)
	tag, err := g.Tag(tagOpts)
	if err != nil {
		return "", err
	}

	return g.renderTemplate(NamePhaseBanner, map[string]any{
		"attrs":   attrs.String(),
		"tag":     tag,
		"content": g.content(opts.Content),
	})
}

// WarningTextOptions configures warning text.
type WarningTextOptions struct {
	Content          `yaml:",inline"`
	IconFallbackText string             `json:"iconFallbackText,omitempty" yaml:"iconFallbackText,omitempty"`
	Classes          string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes       htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// WarningText renders warning text with its icon.
func (g *Generator) WarningText(opts WarningTextOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-warning-text", opts.Classes)
	attrs = attrs.Merge(opts.Attributes)

	return g.renderTemplate(NameWarningText, map[string]any{
		"attrs":    attrs.String(),
		"fallback": firstNonEmpty(opts.IconFallbackText, "Warning"),
		"content":  g.content(opts.Content),
	})
}
