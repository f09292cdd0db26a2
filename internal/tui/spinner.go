package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// runSpinnerFn is swapped in tests to avoid drawing on the terminal.
var runSpinnerFn = func(ctx context.Context, title string, action func()) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		Action(action).
		Run()
}

// WithSpinner runs fn while showing a spinner titled title. The spinner is
// only drawn when enabled is true; otherwise fn runs directly.
func WithSpinner(ctx context.Context, enabled bool, title string, fn func(context.Context) error) error {
	if !enabled {
		return fn(ctx)
	}

	var fnErr error
	if err := runSpinnerFn(ctx, title, func() {
		fnErr = fn(ctx)
	}); err != nil {
		return err
	}
	return fnErr
}
