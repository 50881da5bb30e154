package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	filtersOnce sync.Once

	builtinFilters = map[string]pongo2.FilterFunction{
		"trim":   trimFilter,
		"spaced": spacedFilter,
	}
)

// InstallFilters registers the trim and spaced filters with pongo2 for every
// template set in the process. A filter already registered under the same
// name is left alone. New calls it; other pongo2 based engines rendering the
// component templates need it too.
func InstallFilters() {
	filtersOnce.Do(func() {
		for name, fn := range builtinFilters {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func trimFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// spacedFilter renders " value" for non-blank input and nothing otherwise,
// so optional classes can follow a fixed class list:
//
//	class="govuk-tag{{ params.classes|spaced }}"
func spacedFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	value := strings.TrimSpace(in.String())
	if value == "" {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(" " + value), nil
}

func adaptFilter(name string, fn func(input any, param any) (any, error)) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}
