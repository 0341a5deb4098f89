package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/formatter"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/statemachine"
	"github.com/dmitrymomot/onboarding/pkg/submission"
	"github.com/dmitrymomot/onboarding/pkg/validator"
)

// Wizard drives one applicant through a flow. It is not safe for concurrent
// use apart from the state reads backed by the machine.
type Wizard struct {
	flow      field.Flow
	machine   *statemachine.Machine[State, Event]
	values    field.Values
	errors    field.Errors
	receipt   submission.Receipt
	formatter Formatter
	validator Validator
	submitter Submitter
	log       *slog.Logger
}

// New creates a wizard positioned on the first step of flow. Components not
// supplied through options are built from the flow's locale.
func New(flow field.Flow, opts ...Option) (*Wizard, error) {
	if flow.Len() == 0 {
		return nil, ErrEmptyFlow
	}

	w := &Wizard{
		flow:   flow,
		values: flow.InitialValues(),
		errors: field.Errors{},
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.formatter == nil || w.validator == nil || w.submitter == nil {
		loc, err := locale.Lookup(flow.Locale)
		if err != nil {
			return nil, fmt.Errorf("wizard locale: %w", err)
		}
		if w.formatter == nil {
			w.formatter = formatter.New(loc)
		}
		if w.validator == nil {
			w.validator = validator.NewStepValidator(loc)
		}
		if w.submitter == nil {
			w.submitter = submission.NewService(submission.NewSimulated(loc.Bank), submission.WithLogger(w.log))
		}
	}

	w.log = w.log.With(
		logger.Component("wizard"),
		logger.Locale(flow.Locale),
		logger.AccountType(string(flow.AccountType)),
	)

	m, err := statemachine.New(StepState(1), w.transitions()...)
	if err != nil {
		return nil, fmt.Errorf("wizard state machine: %w", err)
	}
	w.machine = m
	return w, nil
}

func (w *Wizard) transitions() []statemachine.Option[State, Event] {
	valid := statemachine.WithGuard[State, Event](func(_ context.Context, _ State, _ Event, data any) bool {
		errs, _ := data.(field.Errors)
		return errs.Valid()
	})
	delivered := statemachine.WithGuard[State, Event](func(_ context.Context, _ State, _ Event, data any) bool {
		r, ok := data.(submission.Receipt)
		return ok && r.Reference != uuid.Nil
	})
	record := statemachine.WithAction[State, Event](func(_ context.Context, _, _ State, _ Event, data any) error {
		w.receipt = data.(submission.Receipt)
		return nil
	})

	n := w.flow.Len()
	opts := make([]statemachine.Option[State, Event], 0, 2*n+3)
	for i := 1; i <= n; i++ {
		next := StateReview
		if i < n {
			next = StepState(i + 1)
		}
		prev := StateExited
		if i > 1 {
			prev = StepState(i - 1)
		}
		opts = append(opts,
			statemachine.WithTransition(StepState(i), next, EventContinue, valid),
			statemachine.WithTransition[State, Event](StepState(i), prev, EventBack),
		)
	}
	opts = append(opts,
		statemachine.WithTransition[State, Event](StateReview, StepState(n), EventBack),
		statemachine.WithTransition(StateReview, StateSubmitted, EventSubmit, delivered, record),
		statemachine.WithListener[State, Event](func(ctx context.Context, from, to State, event Event) {
			w.log.DebugContext(ctx, "wizard transition",
				logger.Transition(from.String(), to.String(), string(event)))
		}),
	)
	return opts
}

// Flow returns the schema the wizard walks through.
func (w *Wizard) Flow() field.Flow {
	return w.flow
}

// State returns the current wizard state.
func (w *Wizard) State() State {
	return w.machine.Current()
}

// Step returns the 1-based index of the current form step, or 0 on the review
// screen and in terminal states.
func (w *Wizard) Step() int {
	return w.State().Step()
}

// CurrentStep returns the schema of the current form step.
func (w *Wizard) CurrentStep() (field.Step, bool) {
	i := w.Step()
	if i == 0 {
		return field.Step{}, false
	}
	return w.flow.Step(i), true
}

// Progress returns the 1-based position and the number of steps. The review
// screen reports the last step.
func (w *Wizard) Progress() (int, int) {
	n := w.flow.Len()
	if i := w.Step(); i > 0 {
		return i, n
	}
	return n, n
}

// Done reports whether the application was submitted or abandoned.
func (w *Wizard) Done() bool {
	return w.State().Terminal()
}

// Values returns a copy of the current form values.
func (w *Wizard) Values() field.Values {
	return w.values.Clone()
}

// Errors returns a copy of the errors stored by the last rejected Continue,
// minus the fields edited since.
func (w *Wizard) Errors() field.Errors {
	out := make(field.Errors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Receipt returns the receipt of a successful submission.
func (w *Wizard) Receipt() (submission.Receipt, bool) {
	return w.receipt, w.State() == StateSubmitted
}

// Application returns the collected data tagged with account type and locale.
func (w *Wizard) Application() submission.Application {
	return submission.Application{
		AccountType: w.flow.AccountType,
		Locale:      strings.ToUpper(w.flow.Locale),
		Data:        w.values.Clone(),
	}
}

// Edit formats raw for the field's type, stores it and clears the field's
// error. Select values go through Choose; toggles must use Toggle. Keys
// outside the flow are stored as typed.
func (w *Wizard) Edit(key, raw string) (string, error) {
	if w.Done() {
		return "", ErrFinished
	}

	def, ok := w.flow.Field(key)
	if !ok {
		w.set(key, raw)
		return raw, nil
	}

	switch def.Type {
	case field.TypeToggle:
		return "", fmt.Errorf("%w: %s is a %s field", ErrFieldType, key, def.Type)
	case field.TypeSelect:
		if err := w.Choose(key, raw); err != nil {
			return "", err
		}
		return raw, nil
	}

	value := w.formatter.Format(raw, def.Type)
	w.set(key, value)
	return value, nil
}

// Toggle stores the value of a toggle field.
func (w *Wizard) Toggle(key string, on bool) error {
	if _, err := w.lookup(key, field.TypeToggle); err != nil {
		return err
	}
	w.set(key, on)
	return nil
}

// Choose stores the value of a select field. The value must be one of the
// field's options.
func (w *Wizard) Choose(key, value string) error {
	def, err := w.lookup(key, field.TypeSelect)
	if err != nil {
		return err
	}
	if !def.HasOption(value) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, key)
	}
	w.set(key, value)
	return nil
}

// lookup returns the definition of key when the wizard still accepts input
// and the field has type typ.
func (w *Wizard) lookup(key string, typ field.Type) (field.Definition, error) {
	if w.Done() {
		return field.Definition{}, ErrFinished
	}
	def, ok := w.flow.Field(key)
	if !ok {
		return field.Definition{}, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if def.Type != typ {
		return field.Definition{}, fmt.Errorf("%w: %s is a %s field", ErrFieldType, key, def.Type)
	}
	return def, nil
}

func (w *Wizard) set(key string, value any) {
	w.values[key] = value
	w.errors = w.errors.Clear(key)
}

// Continue validates the current step. With errors the wizard stays put and
// returns them; otherwise it advances to the next step or to review.
func (w *Wizard) Continue(ctx context.Context) (field.Errors, error) {
	step, ok := w.CurrentStep()
	if !ok {
		return nil, ErrNotInStep
	}

	errs := w.validator.Validate(step, w.values)
	if errs == nil {
		errs = field.Errors{}
	}
	w.errors = errs

	err := w.machine.Fire(ctx, EventContinue, errs)
	switch {
	case err == nil:
		return errs, nil
	case statemachine.IsTransitionRejectedError(err):
		w.log.InfoContext(ctx, "step rejected",
			logger.Step(step.ID),
			logger.Fields(errs.Keys(step)))
		return w.Errors(), nil
	default:
		return nil, fmt.Errorf("continue: %w", err)
	}
}

// Back returns to the previous step. From the first step the applicant
// leaves the flow; from review the last step is shown again. Stored errors
// are kept.
func (w *Wizard) Back(ctx context.Context) error {
	if w.Done() {
		return ErrFinished
	}
	if err := w.machine.Fire(ctx, EventBack, nil); err != nil {
		return fmt.Errorf("back: %w", err)
	}
	return nil
}

// Submit delivers the application from the review screen. A failed delivery
// leaves the wizard on review so the applicant can retry.
func (w *Wizard) Submit(ctx context.Context, acceptedTerms bool) (submission.Receipt, error) {
	if w.State() != StateReview {
		return submission.Receipt{}, ErrNotInReview
	}
	if !acceptedTerms {
		return submission.Receipt{}, ErrTermsNotAccepted
	}

	receipt, err := w.submitter.Submit(ctx, w.Application())
	if err != nil {
		w.log.WarnContext(ctx, "submission failed", logger.Error(err))
		return submission.Receipt{}, err
	}

	if err := w.machine.Fire(ctx, EventSubmit, receipt); err != nil {
		return submission.Receipt{}, fmt.Errorf("submit: %w", err)
	}
	w.log.InfoContext(ctx, "application submitted", logger.Reference(receipt.Reference))
	return receipt, nil
}
