package binding

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

// Struct tags read by BindStruct.
const (
	TagForm      = "form"
	TagDisplay   = "display"
	TagDateInput = "dateinput"
)

// FieldFromStruct derives binding metadata from a struct field. The form key
// defaults to the Go field name; the dateinput tag accepts
// "items=day|month,prefix=Your birthday".
func FieldFromStruct(sf reflect.StructField) (Field, error) {
	field := Field{
		Name:        sf.Name,
		DisplayName: strings.TrimSpace(sf.Tag.Get(TagDisplay)),
	}
	if name := strings.TrimSpace(sf.Tag.Get(TagForm)); name != "" {
		field.Name = name
	}

	raw := strings.TrimSpace(sf.Tag.Get(TagDateInput))
	if raw == "" {
		return field, nil
	}
	for _, part := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			return Field{}, fmt.Errorf("binding: field %s: malformed dateinput tag segment %q", sf.Name, part)
		}
		switch strings.TrimSpace(key) {
		case "items":
			items, err := dateinput.ParseItemTypes(value)
			if err != nil {
				return Field{}, fmt.Errorf("binding: field %s: %w", sf.Name, err)
			}
			field.ItemTypes = items
		case "prefix":
			field.ErrorMessagePrefix = strings.TrimSpace(value)
		default:
			return Field{}, fmt.Errorf("binding: field %s: unknown dateinput tag key %q", sf.Name, key)
		}
	}
	return field, nil
}

// BindStruct binds every exported field of the struct pointed to by dst
// whose type has a registered converter. Fields tagged form:"-" are skipped.
// Fields that fail to parse keep their previous value.
func (b *Binder) BindStruct(values ValueProvider, dst any, state *ModelState) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("binding: destination must be a non-nil struct pointer")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("binding: destination must point to a struct, got %s", rv.Kind())
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Tag.Get(TagForm) == "-" {
			continue
		}
		if !b.registry.Has(sf.Type) {
			continue
		}

		field, err := FieldFromStruct(sf)
		if err != nil {
			return err
		}

		result, err := b.BindDate(values, field, sf.Type, state)
		if err != nil {
			return err
		}
		if result.Outcome != OutcomeBound {
			continue
		}

		model := reflect.ValueOf(result.Model)
		if !model.Type().AssignableTo(sf.Type) {
			return fmt.Errorf("binding: field %s: cannot assign %s to %s", sf.Name, model.Type(), sf.Type)
		}
		rv.Field(i).Set(model)
	}
	return nil
}
