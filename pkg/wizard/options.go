package wizard

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/submission"
)

// Formatter reformats raw keystroke input for a field type.
type Formatter interface {
	Format(raw string, t field.Type) string
}

// Validator computes the errors of one step.
type Validator interface {
	Validate(step field.Step, values field.Values) field.Errors
}

// Submitter delivers a completed application.
type Submitter interface {
	Submit(ctx context.Context, app submission.Application) (submission.Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, app submission.Application) (submission.Receipt, error)

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, app submission.Application) (submission.Receipt, error) {
	return f(ctx, app)
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithFormatter replaces the locale formatter.
func WithFormatter(f Formatter) Option {
	return func(w *Wizard) {
		if f != nil {
			w.formatter = f
		}
	}
}

// WithValidator replaces the locale step validator.
func WithValidator(v Validator) Option {
	return func(w *Wizard) {
		if v != nil {
			w.validator = v
		}
	}
}

// WithSubmitter replaces the simulated submission service.
func WithSubmitter(s Submitter) Option {
	return func(w *Wizard) {
		if s != nil {
			w.submitter = s
		}
	}
}

// WithLogger sets the wizard logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.log = l
		}
	}
}
