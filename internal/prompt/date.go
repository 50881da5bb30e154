package prompt

import (
	"context"

	"github.com/goliatone/go-govuk/pkg/dateinput"
)

// DateConfig configures AskDate.
type DateConfig struct {
	// Label is used in prompts and error messages. Defaults to "Date".
	Label            string
	ItemTypes        dateinput.ItemTypes
	AcceptMonthNames bool
	// Retry offers another attempt after an invalid answer.
	Retry bool
}

// DateAnswers holds the raw text entered for each box.
type DateAnswers struct {
	Day   string
	Month string
	Year  string
}

// DateResult is the outcome of AskDate. Values is only populated when Errors
// is None.
type DateResult struct {
	Answers DateAnswers
	Errors  dateinput.ParseErrors
	Values  dateinput.ItemValues
}

var itemTypeChoices = []struct {
	label string
	items dateinput.ItemTypes
}{
	{"Day, month and year", dateinput.DayMonthYear},
	{"Day and month", dateinput.DayMonth},
	{"Month and year", dateinput.MonthYear},
}

// AskItemTypes lets the user pick one of the supported box combinations.
func AskItemTypes(ctx context.Context, driver Driver) (dateinput.ItemTypes, error) {
	options := make([]string, len(itemTypeChoices))
	for i, choice := range itemTypeChoices {
		options[i] = choice.label
	}
	idx, err := driver.Select(ctx, Choice{
		Message: "Which parts of the date?",
		Options: options,
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(itemTypeChoices) {
		return dateinput.DayMonthYear, nil
	}
	return itemTypeChoices[idx].items, nil
}

// AskDate prompts for each box selected by cfg.ItemTypes and parses the
// answers. Parse failures are reported through driver.Info and returned in
// the result rather than as an error.
func AskDate(ctx context.Context, driver Driver, cfg DateConfig) (DateResult, error) {
	items := cfg.ItemTypes
	if items.IsZero() {
		return DateResult{}, ErrNoItems
	}
	label := cfg.Label
	if label == "" {
		label = "Date"
	}

	var answers DateAnswers
	for {
		var err error
		if items.Has(dateinput.Day) {
			if answers.Day, err = driver.Input(ctx, Question{Message: label + " (day)", Default: answers.Day}); err != nil {
				return DateResult{}, err
			}
		}
		if items.Has(dateinput.Month) {
			help := "Enter a number from 1 to 12"
			if cfg.AcceptMonthNames {
				help += " or a month name"
			}
			if answers.Month, err = driver.Input(ctx, Question{Message: label + " (month)", Default: answers.Month, Help: help}); err != nil {
				return DateResult{}, err
			}
		}
		if items.Has(dateinput.Year) {
			if answers.Year, err = driver.Input(ctx, Question{Message: label + " (year)", Default: answers.Year, Help: "Enter 4 digits"}); err != nil {
				return DateResult{}, err
			}
		}

		errs, values := dateinput.Parse(items, answers.Day, answers.Month, answers.Year, cfg.AcceptMonthNames)
		result := DateResult{Answers: answers, Errors: errs, Values: values}
		if errs == dateinput.None {
			return result, nil
		}
		if err := driver.Info(ctx, dateinput.ErrorMessage(errs, label)); err != nil {
			return DateResult{}, err
		}
		if !cfg.Retry {
			return result, nil
		}
		again, err := driver.Confirm(ctx, YesNo{Message: "Try again?", Default: true})
		if err != nil {
			return DateResult{}, err
		}
		if !again {
			return result, nil
		}
	}
}
