package components

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// describedBy joins the non-empty ids in order, skipping repeats.
func describedBy(ids ...string) string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, chunk := range ids {
		for _, id := range strings.Fields(chunk) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return strings.Join(out, " ")
}

func formGroupAttrs(group *FormGroupOptions, hasError bool) htmltag.Attributes {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-form-group")
	if hasError {
		attrs.AddClass("govuk-form-group--error")
	}
	if group != nil {
		attrs.AddClass(group.Classes)
		attrs = attrs.Merge(group.Attributes)
	}
	return attrs
}

// itemID numbers repeated items the way GOV.UK does: the first item takes the
// prefix, later items append their 1-based position.
func itemID(prefix string, index int) string {
	if index == 0 {
		return prefix
	}
	return prefix + "-" + strconv.Itoa(index+1)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// chrome renders the hint and error message shared by form controls and
// returns their ids for aria-describedby.
type chrome struct {
	hint     string
	hintID   string
	errorMsg string
	errorID  string
}

func (g *Generator) fieldChrome(id string, hint *HintOptions, errorMessage *ErrorMessageOptions) (chrome, error) {
	var out chrome
	if hint != nil && !hint.IsZero() {
		opts := *hint
		opts.ID = firstNonEmpty(opts.ID, id+"-hint")
		markup, err := g.Hint(opts)
		if err != nil {
			return chrome{}, err
		}
		out.hint, out.hintID = markup, opts.ID
	}
	if errorMessage != nil && !errorMessage.IsZero() {
		opts := *errorMessage
		opts.ID = firstNonEmpty(opts.ID, id+"-error")
		markup, err := g.ErrorMessage(opts)
		if err != nil {
			return chrome{}, err
		}
		out.errorMsg, out.errorID = markup, opts.ID
	}
	return out, nil
}

func (c chrome) hasError() bool {
	return c.errorMsg != ""
}

// fieldsetView renders the opening fieldset attributes and legend for
// grouped controls.
func (g *Generator) fieldsetView(fieldset *FieldsetOptions, describedByIDs string) map[string]any {
	if fieldset == nil {
		return nil
	}
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-fieldset", fieldset.Classes)
	attrs.SetIf("role", fieldset.Role)
	attrs.SetIf("aria-describedby", describedBy(fieldset.DescribedBy, describedByIDs))
	attrs = attrs.Merge(fieldset.Attributes)
	return map[string]any{
		"attrs":  attrs.String(),
		"legend": g.legend(fieldset.Legend),
	}
}

func (g *Generator) legend(legend *LegendOptions) string {
	if legend == nil || legend.IsZero() {
		return ""
	}
	tag := htmltag.New("legend").Class("govuk-fieldset__legend", legend.Classes)
	if legend.IsPageHeading {
		tag.Append(htmltag.New("h1").Class("govuk-fieldset__heading").HTML(g.content(legend.Content)))
	} else {
		tag.HTML(g.content(legend.Content))
	}
	return tag.String()
}

func joinClasses(classes ...string) string {
	return strings.Join(strings.Fields(strings.Join(classes, " ")), " ")
}
