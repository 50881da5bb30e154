package components

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeKeyPrefix prefixes component names in theme template maps, e.g.
// "govuk.date-input".
const ThemeKeyPrefix = "govuk."

// themePartials collects component template overrides from a selection.
// Variant templates win over the manifest's.
func themePartials(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	partials := make(map[string]string)
	collect := func(templates map[string]string) {
		for key, path := range templates {
			name, ok := strings.CutPrefix(key, ThemeKeyPrefix)
			if !ok || strings.TrimSpace(path) == "" {
				continue
			}
			partials[normalize(name)] = path
		}
	}
	collect(selection.Manifest.Templates)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		collect(variant.Templates)
	}
	if len(partials) == 0 {
		return nil
	}
	return partials
}
