package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/review"
	"github.com/dmitrymomot/onboarding/pkg/submission"
	"github.com/dmitrymomot/onboarding/pkg/wizard"
)

// WizardFactory starts a wizard for the chosen account type.
type WizardFactory func(accountType field.AccountType) (*wizard.Wizard, error)

var accountTypes = []field.AccountType{field.AccountPersonal, field.AccountBusiness}

const (
	actionContinue = "Continue"
	actionBack     = "Back"
	actionSubmit   = "Submit Application"
)

// Host renders a wizard on a PromptDriver: account type selection, form
// steps, review and submission.
type Host struct {
	driver PromptDriver
	start  WizardFactory
	lang   language.Tag
	log    *slog.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithLanguage sets the language of generated titles.
func WithLanguage(tag language.Tag) HostOption {
	return func(h *Host) {
		h.lang = tag
	}
}

// WithLogger sets the host logger.
func WithLogger(l *slog.Logger) HostOption {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHost creates a host prompting through driver.
func NewHost(driver PromptDriver, start WizardFactory, opts ...HostOption) *Host {
	h := &Host{
		driver: driver,
		start:  start,
		lang:   language.English,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("terminal"))
	return h
}

// Run walks the applicant through onboarding until the application is
// submitted. It returns ErrExited when the applicant backs out of the first
// step and ErrAborted when a prompt is interrupted.
func (h *Host) Run(ctx context.Context) (submission.Receipt, error) {
	accountType, err := h.chooseAccountType(ctx)
	if err != nil {
		return submission.Receipt{}, err
	}

	w, err := h.start(accountType)
	if err != nil {
		return submission.Receipt{}, fmt.Errorf("start wizard: %w", err)
	}
	h.log.InfoContext(ctx, "onboarding started", logger.AccountType(string(accountType)))

	var pending []field.Definition
	for {
		switch state := w.State(); {
		case state == wizard.StateExited:
			return submission.Receipt{}, ErrExited

		case state == wizard.StateReview:
			receipt, done, err := h.review(ctx, w)
			if err != nil {
				return submission.Receipt{}, err
			}
			if done {
				return receipt, h.receipt(ctx, receipt)
			}
			pending = nil

		case state.Step() > 0:
			pending, err = h.step(ctx, w, pending)
			if err != nil {
				return submission.Receipt{}, err
			}

		default:
			return submission.Receipt{}, fmt.Errorf("unexpected wizard state %q", state)
		}
	}
}

func (h *Host) chooseAccountType(ctx context.Context) (field.AccountType, error) {
	options := make([]string, len(accountTypes))
	for i, t := range accountTypes {
		options[i] = review.Title(t, review.WithLanguage(h.lang))
	}
	idx, err := h.driver.Select(ctx, SelectConfig{
		Message: "Which account would you like to open?",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(accountTypes) {
		return "", fmt.Errorf("account type choice %d out of range", idx)
	}
	return accountTypes[idx], nil
}

// step prompts for the pending fields of the current step, all of them when
// pending is empty, then asks whether to continue or go back. It returns the
// fields that still need attention.
func (h *Host) step(ctx context.Context, w *wizard.Wizard, pending []field.Definition) ([]field.Definition, error) {
	step, _ := w.CurrentStep()
	if len(pending) == 0 {
		pos, total := w.Progress()
		if err := h.info(ctx, fmt.Sprintf("\nStep %d of %d: %s", pos, total, step.Title)); err != nil {
			return nil, err
		}
		if step.Description != "" {
			if err := h.info(ctx, step.Description); err != nil {
				return nil, err
			}
		}
		pending = step.Fields
	}

	for _, def := range pending {
		if err := h.prompt(ctx, w, def); err != nil {
			return nil, err
		}
	}

	idx, err := h.driver.Select(ctx, SelectConfig{
		Message: step.Title,
		Options: []string{actionContinue, actionBack},
	})
	if err != nil {
		return nil, err
	}
	if idx == 1 {
		return nil, w.Back(ctx)
	}

	errs, err := w.Continue(ctx)
	if err != nil {
		return nil, err
	}
	if errs.Valid() {
		return nil, nil
	}

	var retry []field.Definition
	for _, def := range step.Fields {
		msg, ok := errs[def.Key]
		if !ok {
			continue
		}
		if err := h.info(ctx, "  ! "+msg); err != nil {
			return nil, err
		}
		retry = append(retry, def)
	}
	return retry, nil
}

func (h *Host) prompt(ctx context.Context, w *wizard.Wizard, def field.Definition) error {
	values := w.Values()
	switch def.Type {
	case field.TypeToggle:
		on, err := h.driver.Confirm(ctx, ConfirmConfig{Message: def.Label, Default: values.Bool(def.Key)})
		if err != nil {
			return err
		}
		return w.Toggle(def.Key, on)

	case field.TypeSelect:
		labels := make([]string, len(def.Options))
		for i, o := range def.Options {
			labels[i] = o.Label
		}
		current := values.String(def.Key)
		idx, err := h.driver.Select(ctx, SelectConfig{
			Message:      def.Label,
			Options:      labels,
			DefaultIndex: slices.IndexFunc(def.Options, func(o field.Option) bool { return o.Value == current }),
			Help:         def.Placeholder,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(def.Options) {
			return fmt.Errorf("%s choice %d out of range", def.Key, idx)
		}
		return w.Choose(def.Key, def.Options[idx].Value)

	case field.TypePassword:
		raw, err := h.driver.Password(ctx, InputConfig{Message: def.Label, Help: def.Placeholder})
		if err != nil {
			return err
		}
		_, err = w.Edit(def.Key, raw)
		return err

	default:
		raw, err := h.driver.Input(ctx, InputConfig{
			Message: def.Label,
			Default: values.String(def.Key),
			Help:    def.Placeholder,
		})
		if err != nil {
			return err
		}
		_, err = w.Edit(def.Key, raw)
		return err
	}
}

// review shows the collected data and submits it once the terms are
// accepted. done is false when the applicant went back or submission failed.
func (h *Host) review(ctx context.Context, w *wizard.Wizard) (submission.Receipt, bool, error) {
	flow := w.Flow()
	lines := []string{
		"\n" + review.Title(flow.AccountType, review.WithLanguage(h.lang)),
		review.Subtitle,
	}
	for _, section := range review.Build(flow, w.Values()) {
		lines = append(lines, "\n"+section.Title)
		for _, row := range section.Rows {
			lines = append(lines, fmt.Sprintf("  %s: %s", row.Label, row.Value))
		}
	}
	lines = append(lines, "", review.Disclosure)
	for _, line := range lines {
		if err := h.info(ctx, line); err != nil {
			return submission.Receipt{}, false, err
		}
	}

	idx, err := h.driver.Select(ctx, SelectConfig{
		Message: "Review",
		Options: []string{actionSubmit, actionBack},
	})
	if err != nil {
		return submission.Receipt{}, false, err
	}
	if idx == 1 {
		return submission.Receipt{}, false, w.Back(ctx)
	}

	accepted, err := h.driver.Confirm(ctx, ConfirmConfig{Message: review.Terms})
	if err != nil {
		return submission.Receipt{}, false, err
	}

	if err := h.info(ctx, "Submitting..."); err != nil {
		return submission.Receipt{}, false, err
	}
	receipt, err := w.Submit(ctx, accepted)
	switch {
	case err == nil:
		return receipt, true, nil
	case errors.Is(err, wizard.ErrTermsNotAccepted):
		return submission.Receipt{}, false, h.info(ctx, "  ! Please accept the terms and conditions to continue")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return submission.Receipt{}, false, err
	default:
		h.log.WarnContext(ctx, "submission failed", logger.Error(err))
		return submission.Receipt{}, false, h.info(ctx, "  ! Submission failed: "+err.Error())
	}
}

func (h *Host) receipt(ctx context.Context, r submission.Receipt) error {
	lines := []string{
		"\nApplication Submitted!",
		"Your account has been created successfully.",
		fmt.Sprintf("  Reference: %s", r.Reference),
		fmt.Sprintf("  %s: %s", r.BranchLabel, r.BranchNumber),
		fmt.Sprintf("  Account Number: %s", r.AccountNumber),
	}
	for _, line := range lines {
		if err := h.info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) info(ctx context.Context, msg string) error {
	return h.driver.Info(ctx, msg)
}
