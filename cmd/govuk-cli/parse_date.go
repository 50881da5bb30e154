package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-govuk/internal/prompt"
	"github.com/goliatone/go-govuk/pkg/dateinput"
)

var errInvalidDate = errors.New("invalid date")

func newParseDateCmd(a *app) *cobra.Command {
	var (
		day, month, year string
		items            string
		label            string
		monthNames       bool
		interactive      bool
	)
	cmd := &cobra.Command{
		Use:   "parse-date",
		Short: "Parse day, month and year values like a date input",
		Long: `Parse the values of a date input and print the date in ISO 8601 form:
YYYY-MM-DD, --MM-DD for day and month, or YYYY-MM for month and year.
Invalid input prints the message a user would see and exits non-zero.`,
		Example: `  govuk-cli parse-date --day 14 --month mar --year 2021
  govuk-cli parse-date --items month,year --month 9 --year 2027
  govuk-cli parse-date --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accept := a.cfg.AcceptMonthNamesInDateInputs
			if cmd.Flags().Changed("month-names") {
				accept = monthNames
			}

			itemTypes, err := dateinput.ParseItemTypes(items)
			if err != nil {
				return err
			}

			if interactive && itemTypes.IsZero() {
				if itemTypes, err = prompt.AskItemTypes(cmd.Context(), a.promptDriver(cmd)); err != nil {
					return err
				}
			}
			if itemTypes.IsZero() {
				itemTypes = dateinput.DayMonthYear
			}
			if !itemTypes.Supported() {
				return fmt.Errorf("%w: %s", dateinput.ErrUnsupportedItemTypes, itemTypes)
			}

			if interactive {
				result, err := prompt.AskDate(cmd.Context(), a.promptDriver(cmd), prompt.DateConfig{
					Label:            label,
					ItemTypes:        itemTypes,
					AcceptMonthNames: accept,
					Retry:            true,
				})
				if err != nil {
					return err
				}
				return reportDate(cmd, a, itemTypes, result.Errors, result.Values, label)
			}

			errs, values := dateinput.Parse(itemTypes, day, month, year, accept)
			return reportDate(cmd, a, itemTypes, errs, values, label)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&day, "day", "", "day value")
	flags.StringVar(&month, "month", "", "month value")
	flags.StringVar(&year, "year", "", "year value")
	flags.StringVar(&items, "items", "", "boxes to parse: day|month|year, day|month or month|year")
	flags.StringVar(&label, "label", "Date", "field name used in error messages")
	flags.BoolVar(&monthNames, "month-names", true, "accept month names such as jan or March")
	flags.BoolVarP(&interactive, "interactive", "i", false, "prompt for each box")
	return cmd
}

func reportDate(cmd *cobra.Command, a *app, itemTypes dateinput.ItemTypes, errs dateinput.ParseErrors, values dateinput.ItemValues, label string) error {
	if errs != dateinput.None {
		a.logger.Info().Stringer("parse_errors", errs).Stringer("item_types", itemTypes).Msg("date did not parse")
		return fmt.Errorf("%w: %s", errInvalidDate, dateinput.ErrorMessage(errs, label))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), formatDate(itemTypes, values))
	return err
}

func formatDate(itemTypes dateinput.ItemTypes, values dateinput.ItemValues) string {
	switch itemTypes {
	case dateinput.DayMonth:
		return fmt.Sprintf("--%02d-%02d", values.Month, values.Day)
	case dateinput.MonthYear:
		return fmt.Sprintf("%04d-%02d", values.Year, values.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", values.Year, values.Month, values.Day)
	}
}
