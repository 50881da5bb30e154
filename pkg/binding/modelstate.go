package binding

import (
	"sort"
	"strings"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

// FieldState holds the binding outcome recorded against one key.
type FieldState struct {
	// AttemptedValue is the raw value the user submitted, kept so forms can
	// be redisplayed as entered.
	AttemptedValue string
	// Errors lists human-readable messages in the order they were added.
	Errors []string
	// DateErrors records which boxes of a date input were at fault. It is
	// only set on the top-level key of a date field.
	DateErrors dateinput.ParseErrors
}

// ModelState collects attempted values and errors keyed by dotted field
// name. The zero value is ready to use.
type ModelState struct {
	fields map[string]*FieldState
}

// NewModelState returns an empty ModelState.
func NewModelState() *ModelState {
	return &ModelState{fields: make(map[string]*FieldState)}
}

func (s *ModelState) entry(key string) *FieldState {
	if s.fields == nil {
		s.fields = make(map[string]*FieldState)
	}
	state, ok := s.fields[key]
	if !ok {
		state = &FieldState{}
		s.fields[key] = state
	}
	return state
}

// SetAttemptedValue records the raw value submitted for key.
func (s *ModelState) SetAttemptedValue(key, value string) {
	s.entry(key).AttemptedValue = value
}

// AddError appends message to key, skipping blank and duplicate messages.
func (s *ModelState) AddError(key, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	state := s.entry(key)
	for _, existing := range state.Errors {
		if existing == message {
			return
		}
	}
	state.Errors = append(state.Errors, message)
}

// SetDateErrors records parse errors against a date field key.
func (s *ModelState) SetDateErrors(key string, errs dateinput.ParseErrors) {
	s.entry(key).DateErrors = errs
}

// Field returns the state recorded for key.
func (s *ModelState) Field(key string) (FieldState, bool) {
	if s == nil || s.fields == nil {
		return FieldState{}, false
	}
	state, ok := s.fields[key]
	if !ok {
		return FieldState{}, false
	}
	out := *state
	out.Errors = append([]string(nil), state.Errors...)
	return out, true
}

// AttemptedValue returns the raw value recorded for key.
func (s *ModelState) AttemptedValue(key string) (string, bool) {
	state, ok := s.Field(key)
	if !ok {
		return "", false
	}
	return state.AttemptedValue, true
}

// Errors returns the messages recorded for key.
func (s *ModelState) Errors(key string) []string {
	state, _ := s.Field(key)
	return state.Errors
}

// IsValid reports whether no key has an error.
func (s *ModelState) IsValid() bool {
	if s == nil {
		return true
	}
	for _, state := range s.fields {
		if len(state.Errors) > 0 {
			return false
		}
	}
	return true
}

// Keys returns every recorded key, sorted.
func (s *ModelState) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.fields))
	for key := range s.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ErrorMap returns the messages keyed by field, leaving out keys without
// errors.
func (s *ModelState) ErrorMap() map[string][]string {
	out := make(map[string][]string)
	for _, key := range s.Keys() {
		if errs := s.Errors(key); len(errs) > 0 {
			out[key] = errs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
