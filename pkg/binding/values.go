package binding

import (
	"net/http"
	"net/url"
)

// ValueProvider looks up submitted form values by key.
type ValueProvider interface {
	Value(key string) (string, bool)
}

// ValueProviderFunc adapts a function into a ValueProvider.
type ValueProviderFunc func(key string) (string, bool)

// Value calls the underlying function.
func (fn ValueProviderFunc) Value(key string) (string, bool) {
	return fn(key)
}

// FormValues adapts url.Values. The first value for a key wins.
type FormValues url.Values

// Value implements ValueProvider.
func (v FormValues) Value(key string) (string, bool) {
	values, ok := v[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// MapValues adapts a plain string map.
type MapValues map[string]string

// Value implements ValueProvider.
func (v MapValues) Value(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

// RequestValues parses the request form and returns its values. POST, PUT
// and PATCH bodies take precedence over the query string.
func RequestValues(r *http.Request) (FormValues, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return FormValues(r.Form), nil
}
