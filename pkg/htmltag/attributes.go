// Package htmltag builds HTML elements with attributes that keep their
// insertion order, so generated markup is stable byte for byte.
package htmltag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attribute is a single name/value pair. Boolean attributes render without a
// value.
type Attribute struct {
	Name    string
	Value   string
	Boolean bool
}

// Attributes is an ordered attribute list. The zero value is empty and ready
// to use.
type Attributes struct {
	list []Attribute
}

// Attrs builds Attributes from name/value pairs.
func Attrs(pairs ...string) Attributes {
	var out Attributes
	for i := 0; i+1 < len(pairs); i += 2 {
		out.Set(pairs[i], pairs[i+1])
	}
	return out
}

func (a *Attributes) index(name string) int {
	for i, attr := range a.list {
		if attr.Name == name {
			return i
		}
	}
	return -1
}

// Set assigns value to name. An existing attribute keeps its position.
func (a *Attributes) Set(name, value string) {
	a.put(Attribute{Name: name, Value: value})
}

// SetBool adds name as a boolean attribute when on, and removes it otherwise.
func (a *Attributes) SetBool(name string, on bool) {
	if !on {
		a.Remove(name)
		return
	}
	a.put(Attribute{Name: name, Boolean: true})
}

// SetIf assigns value to name only when value is not empty.
func (a *Attributes) SetIf(name, value string) {
	if value != "" {
		a.Set(name, value)
	}
}

func (a *Attributes) put(attr Attribute) {
	name := strings.TrimSpace(attr.Name)
	if name == "" {
		return
	}
	attr.Name = name
	if i := a.index(name); i >= 0 {
		a.list[i] = attr
		return
	}
	a.list = append(a.list, attr)
}

// Remove deletes name.
func (a *Attributes) Remove(name string) {
	if i := a.index(name); i >= 0 {
		a.list = append(a.list[:i], a.list[i+1:]...)
	}
}

// AddClass appends class tokens to the class attribute, skipping tokens that
// are already present.
func (a *Attributes) AddClass(classes ...string) {
	current, _ := a.Get("class")
	tokens := strings.Fields(current)
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		seen[token] = struct{}{}
	}
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return
	}
	a.Set("class", strings.Join(tokens, " "))
}

// Get returns the value for name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a.list {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is set.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.list)
}

// List returns a copy of the attributes in order.
func (a Attributes) List() []Attribute {
	return append([]Attribute(nil), a.list...)
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	return Attributes{list: a.List()}
}

// Merge returns a copy of a with other applied on top. Attributes already in
// a keep their position; new ones are appended in other's order.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a.Clone()
	for _, attr := range other.list {
		out.put(attr)
	}
	return out
}

// String renders the attributes with a leading space before each one, ready
// to be placed after an element name.
func (a Attributes) String() string {
	var b strings.Builder
	a.writeTo(&b)
	return b.String()
}

func (a Attributes) writeTo(b *strings.Builder) {
	for _, attr := range a.list {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		if attr.Boolean {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteByte('"')
	}
}

// MarshalJSON encodes the attributes as a JSON object in order. Boolean
// attributes encode as true.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a.list {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if attr.Boolean {
			buf.WriteString("true")
			continue
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		a.list = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("htmltag: attributes must be a JSON object")
	}

	var out Attributes
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("htmltag: unexpected attribute key %v", keyTok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("htmltag: attribute %q: %w", name, err)
		}
		if err := out.setValue(name, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping keeping the key order of the document.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		a.list = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("htmltag: attributes must be a mapping (line %d)", node.Line)
	}

	var out Attributes
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return fmt.Errorf("htmltag: attribute %q: %w", name, err)
		}
		if err := out.setValue(name, raw); err != nil {
			return err
		}
	}
	*a = out
	return nil
}

// setValue applies a decoded attribute value. Objects of the form
// {value, optional} drop the attribute when optional and the value is empty,
// false or null.
func (a *Attributes) setValue(name string, raw any) error {
	optional := false
	if obj, ok := raw.(map[string]any); ok {
		raw = obj["value"]
		if flag, ok := obj["optional"].(bool); ok {
			optional = flag
		}
	}

	switch v := raw.(type) {
	case nil:
		if !optional {
			a.Set(name, "")
		}
	case bool:
		if v {
			a.SetBool(name, true)
		} else if !optional {
			a.Set(name, "false")
		}
	case string:
		if v == "" && optional {
			return nil
		}
		a.Set(name, v)
	case json.Number:
		a.Set(name, v.String())
	case int:
		a.Set(name, strconv.Itoa(v))
	case float64:
		a.Set(name, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("htmltag: attribute %q has unsupported value %T", name, raw)
	}
	return nil
}
