package components

import (
	"strconv"

	"github.com/goliatone/go-govuk/pkg/htmltag"
)

// TableCell is one head or body cell.
type TableCell struct {
	Content    `yaml:",inline"`
	Format     string             `json:"format,omitempty" yaml:"format,omitempty"`
	Colspan    int                `json:"colspan,omitempty" yaml:"colspan,omitempty"`
	Rowspan    int                `json:"rowspan,omitempty" yaml:"rowspan,omitempty"`
	Classes    string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// TableOptions configures a table.
type TableOptions struct {
	Caption           string             `json:"caption,omitempty" yaml:"caption,omitempty"`
	CaptionClasses    string             `json:"captionClasses,omitempty" yaml:"captionClasses,omitempty"`
	FirstCellIsHeader bool               `json:"firstCellIsHeader,omitempty" yaml:"firstCellIsHeader,omitempty"`
	Head              []TableCell        `json:"head,omitempty" yaml:"head,omitempty"`
	Rows              [][]TableCell      `json:"rows" yaml:"rows"`
	Classes           string             `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attributes        htmltag.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Table renders a table. Numeric cells are right aligned via the --numeric
// modifier.
func (g *Generator) Table(opts TableOptions) (string, error) {
	var attrs htmltag.Attributes
	attrs.AddClass("govuk-table", opts.Classes)
	attrs = attrs.Merge(opts.Attributes)

	var captionAttrs htmltag.Attributes
	captionAttrs.AddClass("govuk-table__caption", opts.CaptionClasses)

	head := make([]string, 0, len(opts.Head))
	for _, cell := range opts.Head {
		head = append(head, g.tableCell(cell, "th", "col"))
	}

	rows := make([][]string, 0, len(opts.Rows))
	for _, row := range opts.Rows {
		cells := make([]string, 0, len(row))
		for index, cell := range row {
			if index == 0 && opts.FirstCellIsHeader {
				cells = append(cells, g.tableCell(cell, "th", "row"))
				continue
			}
			cells = append(cells, g.tableCell(cell, "td", ""))
		}
		rows = append(rows, cells)
	}

	return g.renderTemplate(NameTable, map[string]any{
		"attrs":        attrs.String(),
		"caption":      g.content(Content{Text: opts.Caption}),
		"captionAttrs": captionAttrs.String(),
		"head":         head,
		"rows":         rows,
	})
}

func (g *Generator) tableCell(cell TableCell, element, scope string) string {
	base := "govuk-table__cell"
	if element == "th" {
		base = "govuk-table__header"
	}
	tag := htmltag.New(element).AttrIf("scope", scope).Class(base)
	if cell.Format != "" {
		tag.Class(base + "--" + cell.Format)
	}
	tag.Class(cell.Classes)
	if cell.Colspan > 1 {
		tag.Attr("colspan", strconv.Itoa(cell.Colspan))
	}
	if cell.Rowspan > 1 {
		tag.Attr("rowspan", strconv.Itoa(cell.Rowspan))
	}
	return tag.MergeAttrs(cell.Attributes).HTML(g.content(cell.Content)).String()
}
