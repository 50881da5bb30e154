package binding

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

// ErrNoConverter is returned when the model type has no registered converter.
var ErrNoConverter = errors.New("binding: no date converter for model type")

// Sub-field suffixes appended to a date field name.
const (
	DaySuffix   = ".Day"
	MonthSuffix = ".Month"
	YearSuffix  = ".Year"
)

// Outcome reports how a bind attempt finished.
type Outcome int

const (
	// OutcomeSkipped means nothing was bound: every box was empty or the
	// field declares an unsupported item combination.
	OutcomeSkipped Outcome = iota
	// OutcomeBound means the boxes parsed and converted to a model value.
	OutcomeBound
	// OutcomeFailed means the boxes did not parse; model state holds the
	// error and the attempted values.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeBound:
		return "bound"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Field describes the date field being bound.
type Field struct {
	// Name is the form key of the field; boxes are read from Name.Day,
	// Name.Month and Name.Year.
	Name string
	// DisplayName is the label used in error messages.
	DisplayName string
	// ErrorMessagePrefix replaces DisplayName in error messages when set.
	ErrorMessagePrefix string
	// ItemTypes overrides the boxes collected. Zero defers to the converter.
	ItemTypes dateinput.ItemTypes
}

// ResolveDisplayName returns the name used at the start of error messages.
func (f Field) ResolveDisplayName() string {
	switch {
	case f.ErrorMessagePrefix != "":
		return f.ErrorMessagePrefix
	case f.DisplayName != "":
		return f.DisplayName
	default:
		return f.Name
	}
}

// Key returns the form key for one box of the field.
func (f Field) Key(item dateinput.ItemTypes) string {
	switch item {
	case dateinput.Day:
		return f.Name + DaySuffix
	case dateinput.Month:
		return f.Name + MonthSuffix
	case dateinput.Year:
		return f.Name + YearSuffix
	default:
		return f.Name
	}
}

// Result is the outcome of a bind attempt and, when bound, the model value.
type Result struct {
	Outcome Outcome
	Model   any
}

// Option configures a Binder.
type Option func(*Binder)

// WithRegistry sets the converter registry. Defaults to
// dateinput.DefaultRegistry().
func WithRegistry(registry *dateinput.Registry) Option {
	return func(b *Binder) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// WithAcceptMonthNames lets users type month names such as "jan" or
// "February" into the month box.
func WithAcceptMonthNames(accept bool) Option {
	return func(b *Binder) {
		b.acceptMonthNames = accept
	}
}

// WithLogger sets the logger used for bind diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

// Binder binds GOV.UK date inputs to model values.
type Binder struct {
	registry         *dateinput.Registry
	acceptMonthNames bool
	logger           zerolog.Logger
}

// New constructs a Binder applying any provided options.
func New(options ...Option) *Binder {
	b := &Binder{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.registry == nil {
		b.registry = dateinput.DefaultRegistry()
	}
	return b
}

// Registry returns the converter registry used by the binder.
func (b *Binder) Registry() *dateinput.Registry {
	return b.registry
}

// AcceptMonthNames reports whether month names are accepted.
func (b *Binder) AcceptMonthNames() bool {
	return b.acceptMonthNames
}

// Supports reports whether modelType can be bound.
func (b *Binder) Supports(modelType reflect.Type) bool {
	return b.registry.Has(modelType)
}

// BindDate reads the boxes of field from values and converts them to
// modelType. User mistakes are reported through state and OutcomeFailed; the
// error return is reserved for wiring problems.
func (b *Binder) BindDate(values ValueProvider, field Field, modelType reflect.Type, state *ModelState) (Result, error) {
	if values == nil {
		return Result{}, errors.New("binding: value provider is required")
	}
	if state == nil {
		return Result{}, errors.New("binding: model state is required")
	}
	if field.Name == "" {
		return Result{}, errors.New("binding: field name is required")
	}
	if !b.registry.Has(modelType) {
		return Result{}, fmt.Errorf("%w: %v", ErrNoConverter, modelType)
	}

	day := lookup(values, field.Key(dateinput.Day))
	month := lookup(values, field.Key(dateinput.Month))
	year := lookup(values, field.Key(dateinput.Year))

	logger := b.logger.With().Str("field", field.Name).Logger()

	if day == "" && month == "" && year == "" {
		logger.Debug().Msg("date input not submitted")
		return Result{Outcome: OutcomeSkipped}, nil
	}

	itemTypes := b.registry.ResolveItemTypes(modelType, field.ItemTypes)
	if !itemTypes.Supported() {
		logger.Warn().Stringer("item_types", itemTypes).Msg("unsupported date input item types")
		return Result{Outcome: OutcomeSkipped}, nil
	}

	errs, parsed := dateinput.Parse(itemTypes, day, month, year, b.acceptMonthNames)
	if errs == dateinput.None {
		model, err := b.registry.ToModel(modelType, itemTypes, parsed)
		if err != nil {
			return Result{}, fmt.Errorf("binding: convert %q: %w", field.Name, err)
		}
		logger.Debug().Stringer("item_types", itemTypes).Msg("date input bound")
		return Result{Outcome: OutcomeBound, Model: model}, nil
	}

	raw := map[dateinput.ItemTypes]string{
		dateinput.Day:   day,
		dateinput.Month: month,
		dateinput.Year:  year,
	}
	for _, item := range []dateinput.ItemTypes{dateinput.Day, dateinput.Month, dateinput.Year} {
		if itemTypes.Has(item) {
			state.SetAttemptedValue(field.Key(item), raw[item])
		}
	}

	message := dateinput.ErrorMessage(errs, field.ResolveDisplayName())
	state.AddError(field.Name, message)
	state.SetDateErrors(field.Name, errs)

	logger.Debug().Stringer("parse_errors", errs).Msg("date input failed to parse")
	return Result{Outcome: OutcomeFailed}, nil
}

// Bind is a typed wrapper around BindDate. The zero T is returned unless the
// outcome is OutcomeBound.
func Bind[T any](b *Binder, values ValueProvider, field Field, state *ModelState) (T, Outcome, error) {
	var zero T
	result, err := b.BindDate(values, field, reflect.TypeOf((*T)(nil)).Elem(), state)
	if err != nil {
		return zero, OutcomeSkipped, err
	}
	if result.Outcome != OutcomeBound {
		return zero, result.Outcome, nil
	}
	model, ok := result.Model.(T)
	if !ok {
		return zero, OutcomeSkipped, fmt.Errorf("binding: converter returned %T for %q", result.Model, field.Name)
	}
	return model, OutcomeBound, nil
}

// Values decomposes model into box values for redisplay. ok is false when
// the model carries no value.
func (b *Binder) Values(model any, modelType reflect.Type, declared dateinput.ItemTypes) (dateinput.ItemValues, dateinput.ItemTypes, bool, error) {
	itemTypes := b.registry.ResolveItemTypes(modelType, declared)
	values, ok, err := b.registry.FromModel(model, itemTypes)
	return values, itemTypes, ok, err
}

func lookup(values ValueProvider, key string) string {
	value, ok := values.Value(key)
	if !ok {
		return ""
	}
	return value
}
