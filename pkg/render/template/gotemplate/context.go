package gotemplate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// toContext turns template data into a pongo2 context. Top level keys are
// trimmed and blank keys dropped.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	if ctx, ok := data.(pongo2.Context); ok {
		data = map[string]any(ctx)
	}

	flat, err := flatten(data)
	if err != nil {
		return nil, err
	}
	values, ok := flat.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want an object, got %T", data)
	}

	ctx := make(pongo2.Context, len(values))
	for key, value := range values {
		if key = strings.TrimSpace(key); key != "" {
			ctx[key] = value
		}
	}
	return ctx, nil
}

// flatten reduces v to maps, slices and JSON scalars. Functions are kept as
// they are so templates can call them.
func flatten(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, float64:
		return t, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, item := range t {
			flat, err := flatten(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = flat
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			flat, err := flatten(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = flat
		}
		return out, nil
	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return flatten(decoded)
}
