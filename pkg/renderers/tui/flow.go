// Package tui drives one interactive confirm sign-up exchange in a
// terminal, prompting for each field and submitting through the controller.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-confirmform/pkg/controller"
	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/phone"
)

// Option configures the flow.
type Option func(*Flow)

// WithPromptDriver overrides the prompt driver used by the flow.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Flow walks a controller's field list, collecting input and dispatching
// change events, then submits the confirmation.
type Flow struct {
	driver PromptDriver
}

// New constructs a Flow, defaulting to the survey-backed prompt driver.
func New(options ...Option) *Flow {
	f := &Flow{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Run prompts for every field in order and submits the confirmation.
// Recoverable submit failures reach the controller's error sink; Run only
// returns prompt-level and fatal configuration errors.
func (f *Flow) Run(ctx context.Context, ctrl *controller.Controller) error {
	if ctrl == nil {
		return ErrNilController
	}

	view := ctrl.View()
	if err := f.driver.Info(ctx, view.Header); err != nil {
		return err
	}

	for _, field := range view.Fields {
		if err := f.promptField(ctx, field); err != nil {
			return err
		}
	}

	return ctrl.Confirm(ctx)
}

func (f *Flow) promptField(ctx context.Context, field model.Field) error {
	label := field.Label
	if label == "" {
		label = string(field.Type)
	}

	if field.Disabled {
		return f.driver.Info(ctx, fmt.Sprintf("%s: %s", label, field.Value))
	}

	if field.Type == model.FieldTypePhone {
		return f.promptPhone(ctx, field, label)
	}

	if field.Type == model.FieldTypeCode {
		if err := f.offerResend(ctx, field); err != nil {
			return err
		}
	}

	value, err := f.driver.Input(ctx, InputConfig{
		Message:     label,
		Default:     field.Value,
		Help:        hintText(field),
		Placeholder: field.Placeholder,
		Validator:   requiredValidator(field),
	})
	if err != nil {
		return err
	}

	dispatch(field, model.ChangeEvent{Name: field.Name, Value: value})
	return nil
}

// promptPhone collects the two halves of a phone number and dispatches them
// as one change event so the composer sees the dial code selection.
func (f *Flow) promptPhone(ctx context.Context, field model.Field, label string) error {
	dialDefault := field.DialCode
	if dialDefault == "" {
		dialDefault = phone.DefaultDialCode
	}

	dial, err := f.driver.Input(ctx, InputConfig{
		Message: "Country dial code",
		Default: dialDefault,
	})
	if err != nil {
		return err
	}

	local, err := f.driver.Input(ctx, InputConfig{
		Message:     label,
		Default:     field.Value,
		Placeholder: field.Placeholder,
		Validator:   requiredValidator(field),
	})
	if err != nil {
		return err
	}

	dispatch(field, model.ChangeEvent{Name: field.Name, Value: local, DialCode: dial})
	return nil
}

// offerResend surfaces the code field's hint action as a yes/no prompt
// before asking for the code itself.
func (f *Flow) offerResend(ctx context.Context, field model.Field) error {
	if field.Hint.Empty() || field.Hint.Action == nil || field.Hint.Action.Invoke == nil {
		return nil
	}

	message := strings.TrimSpace(field.Hint.Text + field.Hint.Action.Label) + "?"
	resend, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message})
	if err != nil {
		return err
	}
	if !resend {
		return nil
	}
	if err := field.Hint.Action.Invoke(); err != nil {
		return err
	}
	return f.driver.Info(ctx, "A new code is on its way.")
}

func dispatch(field model.Field, ev model.ChangeEvent) {
	if field.OnChange != nil {
		field.OnChange(ev)
	}
}

func hintText(field model.Field) string {
	if field.Hint.Empty() {
		return ""
	}
	return strings.TrimSpace(field.Hint.Text)
}

func requiredValidator(field model.Field) func(string) error {
	if !field.Required {
		return nil
	}
	label := field.Label
	if label == "" {
		label = string(field.Type)
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
