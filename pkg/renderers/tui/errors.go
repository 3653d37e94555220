package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilController is returned when Run is invoked without a controller.
	ErrNilController = errors.New("tui: controller is nil")
)
