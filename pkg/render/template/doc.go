// Package template holds the seam between component rendering and the
// template engine. Components only need a Renderer; gotemplate provides the
// pongo2 implementation of the wider TemplateRenderer.
package template
