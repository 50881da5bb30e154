package dateinput

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// Registry maps model types to converters. Build it at startup and share it;
// lookups are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[reflect.Type]Converter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[reflect.Type]Converter),
	}
}

// DefaultRegistry returns a new registry holding the built-in converters for
// Date, time.Time and Pair.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(reflect.TypeOf(Date{}), DateConverter{})
	r.MustRegister(reflect.TypeOf(time.Time{}), TimeConverter{})
	r.MustRegister(reflect.TypeOf(Pair{}), PairConverter{})
	return r
}

// Register associates converter with typ. Pointer types resolve through
// their element type, so register the element type. Registering the same
// type twice returns ErrDuplicateConverter.
func (r *Registry) Register(typ reflect.Type, converter Converter) error {
	if typ == nil {
		return fmt.Errorf("dateinput: model type is required")
	}
	if converter == nil {
		return fmt.Errorf("dateinput: converter for %s is nil", typ)
	}
	if typ.Kind() == reflect.Pointer {
		return fmt.Errorf("dateinput: register %s instead of pointer type %s", typ.Elem(), typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[typ]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateConverter, typ)
	}
	r.converters[typ] = converter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(typ reflect.Type, converter Converter) {
	if err := r.Register(typ, converter); err != nil {
		panic(err)
	}
}

// RegisterFor registers converter for the model type T.
func RegisterFor[T any](r *Registry, converter Converter) error {
	return r.Register(reflect.TypeOf((*T)(nil)).Elem(), converter)
}

// Lookup returns the converter for typ, resolving pointer types to their
// element type.
func (r *Registry) Lookup(typ reflect.Type) (Converter, bool) {
	if r == nil || typ == nil {
		return nil, false
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	converter, ok := r.converters[typ]
	return converter, ok
}

// Has reports whether typ has a converter.
func (r *Registry) Has(typ reflect.Type) bool {
	_, ok := r.Lookup(typ)
	return ok
}

// List returns the registered type names, sorted.
func (r *Registry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.converters))
	for typ := range r.converters {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	return names
}

// ResolveItemTypes picks the item combination for typ: the declared value
// when set, otherwise the converter's fixed combination, otherwise
// DayMonthYear.
func (r *Registry) ResolveItemTypes(typ reflect.Type, declared ItemTypes) ItemTypes {
	if !declared.IsZero() {
		return declared
	}
	if converter, ok := r.Lookup(typ); ok {
		if fixed, ok := converter.ItemTypes(); ok {
			return fixed
		}
	}
	return DayMonthYear
}

// ToModel converts values into a value of typ. Pointer types receive a
// pointer to the converted value.
func (r *Registry) ToModel(typ reflect.Type, itemTypes ItemTypes, values ItemValues) (any, error) {
	converter, ok := r.Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("dateinput: no converter registered for %v", typ)
	}

	elem := typ
	if typ.Kind() == reflect.Pointer {
		elem = typ.Elem()
	}

	model, err := converter.ToModel(ToModelContext{
		ModelType: elem,
		ItemTypes: itemTypes,
		Values:    values,
	})
	if err != nil {
		return nil, err
	}

	if typ.Kind() != reflect.Pointer {
		return model, nil
	}

	rv := reflect.ValueOf(model)
	if !rv.IsValid() || !rv.Type().AssignableTo(elem) {
		return nil, fmt.Errorf("dateinput: converter for %s returned %T", elem, model)
	}
	ptr := reflect.New(elem)
	ptr.Elem().Set(rv)
	return ptr.Interface(), nil
}

// FromModel decomposes model into item values. Nil models and nil pointers
// report ok == false.
func (r *Registry) FromModel(model any, itemTypes ItemTypes) (ItemValues, bool, error) {
	if model == nil {
		return ItemValues{}, false, nil
	}

	rv := reflect.ValueOf(model)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ItemValues{}, false, nil
		}
		rv = rv.Elem()
	}

	converter, ok := r.Lookup(rv.Type())
	if !ok {
		return ItemValues{}, false, fmt.Errorf("dateinput: no converter registered for %s", rv.Type())
	}

	return converter.FromModel(FromModelContext{
		ModelType: rv.Type(),
		ItemTypes: itemTypes,
		Model:     rv.Interface(),
	})
}
