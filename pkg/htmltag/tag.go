package htmltag

import (
	"html"
	"strings"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// Node is anything that can render itself into an element's content.
type Node interface {
	render(b *strings.Builder)
}

type textNode string

func (t textNode) render(b *strings.Builder) {
	b.WriteString(html.EscapeString(string(t)))
}

type rawNode string

func (r rawNode) render(b *strings.Builder) {
	b.WriteString(string(r))
}

// Text returns a node whose content is escaped.
func Text(s string) Node {
	return textNode(s)
}

// Raw returns a node whose content is written as is.
func Raw(s string) Node {
	return rawNode(s)
}

// Tag is an HTML element under construction.
type Tag struct {
	name     string
	attrs    Attributes
	children []Node
}

// New starts an element named name.
func New(name string) *Tag {
	return &Tag{name: strings.ToLower(strings.TrimSpace(name))}
}

// Name returns the element name.
func (t *Tag) Name() string {
	return t.name
}

// Attributes returns a copy of the element's attributes.
func (t *Tag) Attributes() Attributes {
	return t.attrs.Clone()
}

// Attr sets an attribute.
func (t *Tag) Attr(name, value string) *Tag {
	t.attrs.Set(name, value)
	return t
}

// AttrIf sets an attribute when value is not empty.
func (t *Tag) AttrIf(name, value string) *Tag {
	t.attrs.SetIf(name, value)
	return t
}

// BoolAttr toggles a boolean attribute.
func (t *Tag) BoolAttr(name string, on bool) *Tag {
	t.attrs.SetBool(name, on)
	return t
}

// Class appends class tokens.
func (t *Tag) Class(classes ...string) *Tag {
	t.attrs.AddClass(classes...)
	return t
}

// MergeAttrs overlays attrs onto the element's attributes.
func (t *Tag) MergeAttrs(attrs Attributes) *Tag {
	t.attrs = t.attrs.Merge(attrs)
	return t
}

// Text appends escaped text.
func (t *Tag) Text(s string) *Tag {
	t.children = append(t.children, textNode(s))
	return t
}

// HTML appends trusted markup.
func (t *Tag) HTML(s string) *Tag {
	t.children = append(t.children, rawNode(s))
	return t
}

// Content appends html when set, otherwise escaped text.
func (t *Tag) Content(text, html string) *Tag {
	if html != "" {
		return t.HTML(html)
	}
	return t.Text(text)
}

// Append adds child nodes.
func (t *Tag) Append(children ...Node) *Tag {
	for _, child := range children {
		if child != nil {
			t.children = append(t.children, child)
		}
	}
	return t
}

// IsVoid reports whether the element has no end tag.
func (t *Tag) IsVoid() bool {
	_, ok := voidElements[t.name]
	return ok
}

func (t *Tag) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(t.name)
	t.attrs.writeTo(b)
	b.WriteByte('>')
	if t.IsVoid() {
		return
	}
	for _, child := range t.children {
		child.render(b)
	}
	b.WriteString("</")
	b.WriteString(t.name)
	b.WriteByte('>')
}

// String renders the element.
func (t *Tag) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}
