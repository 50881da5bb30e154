// Package components renders GOV.UK Design System components to HTML.
//
// Each component has an options struct whose JSON and YAML field names follow
// the GOV.UK Frontend macro parameters, and a Generator method that renders
// it. Small text components are built directly with htmltag; components with
// structure go through pongo2 templates embedded under templates/, which a
// directory on disk or a go-theme selection can override per component.
//
// The Registry maps component names to descriptors so callers can render a
// component from raw JSON or YAML options:
//
//	gen, _ := components.New()
//	html, err := gen.RenderYAML("date-input", []byte("id: dob\nnamePrefix: dob\n"))
package components
