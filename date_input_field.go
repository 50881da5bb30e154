package govuk

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-govuk/pkg/binding"
	"github.com/goliatone/go-govuk/pkg/components"
	"github.com/goliatone/go-govuk/pkg/dateinput"
)

var dateItems = []struct {
	item  dateinput.ItemTypes
	label string
	width string
}{
	{dateinput.Day, "Day", "govuk-input--width-2"},
	{dateinput.Month, "Month", "govuk-input--width-2"},
	{dateinput.Year, "Year", "govuk-input--width-4"},
}

// DateInputField builds the date input options for a bound field. After a
// failed bind the boxes show what the user typed and the faulty boxes are
// flagged; otherwise they show model decomposed by its converter. An error
// recorded against the field that names no box flags every box.
//
// base supplies the fieldset, hint and other presentation options. Its id
// defaults to the field name and its error message to the first error in
// state.
func DateInputField[T any](binder *binding.Binder, field binding.Field, model T, state *binding.ModelState, base components.DateInputOptions) (components.DateInputOptions, error) {
	opts := base
	opts.ID = firstNonEmpty(opts.ID, field.Name)
	opts.NamePrefix = ""

	modelType := reflect.TypeOf((*T)(nil)).Elem()
	values, itemTypes, hasModel, err := binder.Values(model, modelType, field.ItemTypes)
	if err != nil {
		return components.DateInputOptions{}, err
	}
	if !itemTypes.Supported() {
		itemTypes = dateinput.DayMonthYear
	}

	var fieldState binding.FieldState
	var failed bool
	if state != nil {
		fieldState, failed = state.Field(field.Name)
		failed = failed && len(fieldState.Errors) > 0
	}

	errorItems := fieldState.DateErrors.Items()
	if failed && errorItems.IsZero() {
		errorItems = itemTypes
	}

	opts.Items = make([]components.DateInputItem, 0, 3)
	for _, spec := range dateItems {
		if !itemTypes.Has(spec.item) {
			continue
		}
		key := field.Key(spec.item)
		item := components.DateInputItem{
			ID:      opts.ID + "-" + strings.ToLower(spec.label),
			Name:    key,
			Label:   spec.label,
			Classes: spec.width,
		}
		switch {
		case failed:
			item.Value, _ = state.AttemptedValue(key)
		case hasModel:
			item.Value = itemValue(values, spec.item)
		}
		if failed && errorItems.Has(spec.item) {
			item.Classes += " govuk-input--error"
		}
		opts.Items = append(opts.Items, item)
	}

	if failed && (opts.ErrorMessage == nil || opts.ErrorMessage.IsZero()) {
		opts.ErrorMessage = &components.ErrorMessageOptions{
			Content: components.Content{Text: fieldState.Errors[0]},
		}
	}
	return opts, nil
}

// FirstErrorItemID returns the id of the first flagged box of a date input,
// for linking from an error summary. Falls back to the first box.
func FirstErrorItemID(opts components.DateInputOptions) string {
	for _, item := range opts.Items {
		if strings.Contains(item.Classes, "govuk-input--error") {
			return item.ID
		}
	}
	if len(opts.Items) > 0 {
		return opts.Items[0].ID
	}
	return opts.ID
}

// ErrorSummary lists every error in state. href maps a state key to the
// link target; nil links to "#" plus the key.
func ErrorSummary(state *binding.ModelState, href func(key string) string) components.ErrorSummaryOptions {
	var opts components.ErrorSummaryOptions
	if state == nil {
		return opts
	}
	if href == nil {
		href = func(key string) string { return "#" + key }
	}
	for _, key := range state.Keys() {
		for _, message := range state.Errors(key) {
			opts.ErrorList = append(opts.ErrorList, components.ErrorSummaryItem{
				Content: components.Content{Text: message},
				Href:    href(key),
			})
		}
	}
	return opts
}

func itemValue(values dateinput.ItemValues, item dateinput.ItemTypes) string {
	var n int
	switch item {
	case dateinput.Day:
		n = values.Day
	case dateinput.Month:
		n = values.Month
	case dateinput.Year:
		n = values.Year
	}
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
