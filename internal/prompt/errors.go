package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g. Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoItems is returned when a date prompt is asked for no boxes.
	ErrNoItems = errors.New("prompt: no date items selected")
)
