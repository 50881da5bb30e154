package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Question asks for a line of text. Validate runs on every answer before it
// is accepted.
type Question struct {
	Message  string
	Default  string
	Help     string
	Validate func(string) error
}

// YesNo asks for confirmation.
type YesNo struct {
	Message string
	Default bool
}

// Choice asks the user to pick one of Options.
type Choice struct {
	Message string
	Options []string
	Default int
	Help    string
}

// Driver is the terminal seen by prompt flows. Select returns the index of
// the chosen option.
type Driver interface {
	Input(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, q YesNo) (bool, error)
	Select(ctx context.Context, q Choice) (int, error)
	Info(ctx context.Context, msg string) error
}

// NewSurveyDriver returns a Driver that prompts on stdio with survey.
func NewSurveyDriver(stdio terminal.Stdio) Driver {
	return &surveyDriver{stdio: stdio}
}

type surveyDriver struct {
	stdio terminal.Stdio
}

func (d *surveyDriver) Input(ctx context.Context, q Question) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if q.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return q.Validate(s)
		}))
	}
	err := d.ask(ctx, &survey.Input{Message: q.Message, Default: q.Default, Help: q.Help}, &answer, opts...)
	return answer, err
}

func (d *surveyDriver) Confirm(ctx context.Context, q YesNo) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: q.Message, Default: q.Default}, &answer)
	return answer, err
}

func (d *surveyDriver) Select(ctx context.Context, q Choice) (int, error) {
	p := &survey.Select{Message: q.Message, Options: q.Options, Help: q.Help}
	if q.Default >= 0 && q.Default < len(q.Options) {
		p.Default = q.Options[q.Default]
	}
	var index int
	if err := d.ask(ctx, p, &index); err != nil {
		return -1, err
	}
	return index, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.stdio.Out, msg)
	return err
}

func (d *surveyDriver) ask(ctx context.Context, p survey.Prompt, answer any, opts ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts = append(opts, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err))
	return surveyErr(survey.AskOne(p, answer, opts...))
}

// surveyErr maps Ctrl-C to ErrAborted.
func surveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
