package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	govuk "github.com/goliatone/go-govuk"
	"github.com/goliatone/go-govuk/pkg/binding"
	"github.com/goliatone/go-govuk/pkg/components"
	"github.com/goliatone/go-govuk/pkg/dateinput"
)

const dateOfBirthPath = "/examples/date-of-birth"

var dateOfBirthField = binding.Field{Name: "dob", DisplayName: "Date of birth"}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	registry := s.generator.Registry()
	names := registry.Names()
	entries := make([]map[string]any, 0, len(names))
	for _, name := range names {
		descriptor, _ := registry.Descriptor(name)
		_, hasFixture := s.fixtures.Lookup(name)
		entries = append(entries, map[string]any{
			"name":        name,
			"description": descriptor.Description,
			"examples":    hasFixture,
		})
	}

	body, err := s.pages.RenderTemplate("index", map[string]any{"components": entries})
	if err != nil {
		s.fail(w, "render index", err)
		return
	}
	s.writePage(w, http.StatusOK, "Components", body)
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.generator.Registry().Has(name) {
		http.NotFound(w, r)
		return
	}

	fixture, ok := s.fixtures.Lookup(name)
	if !ok || len(fixture.Examples) == 0 {
		fixture = Fixture{Component: name, Examples: []Example{{Name: "Default"}}}
	}

	examples := make([]map[string]any, 0, len(fixture.Examples))
	for i := range fixture.Examples {
		example := &fixture.Examples[i]
		markup, err := s.generator.Render(name, components.NodeDecoder(&example.Options))
		if err != nil {
			s.fail(w, "render example", err, "component", name, "example", example.Name)
			return
		}
		examples = append(examples, map[string]any{"name": example.Name, "html": markup})
	}

	back, err := s.generator.BackLink(components.BackLinkOptions{Href: "/"})
	if err != nil {
		s.fail(w, "render back link", err)
		return
	}
	body, err := s.pages.RenderTemplate("component", map[string]any{
		"name":     name,
		"examples": examples,
		"backLink": back,
	})
	if err != nil {
		s.fail(w, "render component page", err)
		return
	}
	s.writePage(w, http.StatusOK, name, body)
}

func (s *Server) handleDateOfBirth(w http.ResponseWriter, r *http.Request) {
	s.writeDateOfBirthForm(w, http.StatusOK, binding.NewModelState())
}

func (s *Server) handleDateOfBirthSubmit(w http.ResponseWriter, r *http.Request) {
	values, err := binding.RequestValues(r)
	if err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	state := binding.NewModelState()
	dob, outcome, err := binding.Bind[dateinput.Date](s.binder, values, dateOfBirthField, state)
	if err != nil {
		s.fail(w, "bind date of birth", err)
		return
	}

	switch outcome {
	case binding.OutcomeSkipped:
		state.AddError(dateOfBirthField.Name, "Enter your date of birth")
	case binding.OutcomeBound:
		if !dob.Time(nil).Before(s.now()) {
			keepAttempted(state, values, dateOfBirthField)
			state.AddError(dateOfBirthField.Name, "Date of birth must be in the past")
		}
	}

	if !state.IsValid() {
		s.writeDateOfBirthForm(w, http.StatusUnprocessableEntity, state)
		return
	}

	confirmation, err := s.generator.Panel(components.PanelOptions{
		TitleText: "Details saved",
		Content:   components.Content{Text: "Date of birth: " + dob.String()},
	})
	if err != nil {
		s.fail(w, "render confirmation", err)
		return
	}
	s.writeDateOfBirthPage(w, http.StatusOK, map[string]any{"confirmation": confirmation})
}

func (s *Server) writeDateOfBirthForm(w http.ResponseWriter, status int, state *binding.ModelState) {
	opts, err := govuk.DateInputField(s.binder, dateOfBirthField, dateinput.Date{}, state, components.DateInputOptions{
		Fieldset: &components.FieldsetOptions{
			Legend: &components.LegendOptions{
				Content:       components.Content{Text: "What is your date of birth?"},
				Classes:       "govuk-fieldset__legend--l",
				IsPageHeading: true,
			},
		},
		Hint: &components.HintOptions{Content: components.Content{Text: "For example, 27 3 1985"}},
	})
	if err != nil {
		s.fail(w, "build date input", err)
		return
	}
	field, err := s.generator.DateInput(opts)
	if err != nil {
		s.fail(w, "render date input", err)
		return
	}

	var summary string
	if !state.IsValid() {
		target := "#" + govuk.FirstErrorItemID(opts)
		summary, err = s.generator.ErrorSummary(govuk.ErrorSummary(state, func(string) string { return target }))
		if err != nil {
			s.fail(w, "render error summary", err)
			return
		}
	}

	button, err := s.generator.Button(components.ButtonOptions{Content: components.Content{Text: "Continue"}})
	if err != nil {
		s.fail(w, "render button", err)
		return
	}
	s.writeDateOfBirthPage(w, status, map[string]any{
		"errorSummary": summary,
		"field":        field,
		"button":       button,
	})
}

func (s *Server) writeDateOfBirthPage(w http.ResponseWriter, status int, data map[string]any) {
	back, err := s.generator.BackLink(components.BackLinkOptions{Href: "/"})
	if err != nil {
		s.fail(w, "render back link", err)
		return
	}
	data["backLink"] = back
	body, err := s.pages.RenderTemplate("date-of-birth", data)
	if err != nil {
		s.fail(w, "render date of birth page", err)
		return
	}
	s.writePage(w, status, "Date of birth", body)
}

// keepAttempted records the submitted boxes so a bound value rejected by a
// later rule is redisplayed as typed.
func keepAttempted(state *binding.ModelState, values binding.ValueProvider, field binding.Field) {
	for _, item := range []dateinput.ItemTypes{dateinput.Day, dateinput.Month, dateinput.Year} {
		key := field.Key(item)
		if value, ok := values.Value(key); ok {
			state.SetAttemptedValue(key, value)
		}
	}
}
