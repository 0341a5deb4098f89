package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/flows"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/statemachine"
	"github.com/dmitrymomot/onboarding/pkg/submission"
	"github.com/dmitrymomot/onboarding/pkg/wizard"
)

var personalAU = map[int]func(t *testing.T, w *wizard.Wizard){
	1: func(t *testing.T, w *wizard.Wizard) {
		edit(t, w, "firstName", "Jane")
		edit(t, w, "lastName", "Citizen")
		edit(t, w, "email", "jane@example.com")
		edit(t, w, "phone", "0412345678")
		edit(t, w, "dateOfBirth", "31012000")
	},
	2: func(t *testing.T, w *wizard.Wizard) {
		edit(t, w, "streetAddress", "1 George St")
		edit(t, w, "suburb", "Sydney")
		require.NoError(t, w.Choose("state", "NSW"))
		edit(t, w, "postcode", "2000")
	},
	3: func(t *testing.T, w *wizard.Wizard) {
		edit(t, w, "tfn", "123456789")
		require.NoError(t, w.Choose("idState", "NSW"))
		edit(t, w, "idNumber", "12345678")
	},
	4: func(t *testing.T, w *wizard.Wizard) {},
}

func edit(t *testing.T, w *wizard.Wizard, key, raw string) string {
	t.Helper()
	value, err := w.Edit(key, raw)
	require.NoError(t, err)
	return value
}

func newWizard(t *testing.T, opts ...wizard.Option) *wizard.Wizard {
	t.Helper()
	w, err := wizard.New(flows.MustLoad("AU", field.AccountPersonal), opts...)
	require.NoError(t, err)
	return w
}

func toReview(t *testing.T, w *wizard.Wizard) {
	t.Helper()
	for i := 1; i <= 4; i++ {
		personalAU[i](t, w)
		errs, err := w.Continue(context.Background())
		require.NoError(t, err)
		require.Empty(t, errs, "step %d", i)
	}
	require.Equal(t, wizard.StateReview, w.State())
}

func stubSubmitter(calls *[]submission.Application, err error) wizard.Option {
	return wizard.WithSubmitter(wizard.SubmitterFunc(func(_ context.Context, app submission.Application) (submission.Receipt, error) {
		*calls = append(*calls, app)
		if err != nil {
			return submission.Receipt{}, err
		}
		return submission.Receipt{Reference: uuid.New(), AccountType: app.AccountType, BranchLabel: "BSB"}, nil
	}))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("starts on first step with defaults", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		assert.Equal(t, wizard.StepState(1), w.State())
		assert.Equal(t, 1, w.Step())
		pos, total := w.Progress()
		assert.Equal(t, 1, pos)
		assert.Equal(t, 4, total)

		values := w.Values()
		assert.Equal(t, "AU", values["country"])
		assert.Equal(t, "drivers_licence", values["idType"])
		assert.Equal(t, true, values["enablePayID"])
		assert.Empty(t, w.Errors())
		assert.False(t, w.Done())
	})

	t.Run("empty flow", func(t *testing.T) {
		t.Parallel()
		_, err := wizard.New(field.Flow{Locale: "AU", AccountType: field.AccountPersonal})
		assert.ErrorIs(t, err, wizard.ErrEmptyFlow)
	})

	t.Run("unknown locale without components", func(t *testing.T) {
		t.Parallel()
		flow := flows.MustLoad("AU", field.AccountPersonal)
		flow.Locale = "ZZ"
		_, err := wizard.New(flow)
		assert.ErrorIs(t, err, locale.ErrUnknownLocale)
	})
}

func TestEdit(t *testing.T) {
	t.Parallel()

	t.Run("formats by field type", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		assert.Equal(t, "0412 345 678", edit(t, w, "phone", "0412345678"))
		assert.Equal(t, "123 456 789", edit(t, w, "tfn", "123456789"))
		assert.Equal(t, "$1,234.50", edit(t, w, "initialDeposit", "1234.5"))
		assert.Equal(t, "raw 123", edit(t, w, "notInFlow", "raw 123"))

		values := w.Values()
		assert.Equal(t, "0412 345 678", values["phone"])
		assert.Equal(t, "raw 123", values["notInFlow"])

		values["phone"] = "changed"
		assert.Equal(t, "0412 345 678", w.Values()["phone"], "Values returns a copy")
	})

	t.Run("select values must be options", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		assert.Equal(t, "QLD", edit(t, w, "state", "QLD"))
		_, err := w.Edit("state", "Queensland")
		assert.ErrorIs(t, err, wizard.ErrUnknownOption)
		assert.Equal(t, "QLD", w.Values()["state"])
	})

	t.Run("toggles are rejected", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		_, err := w.Edit("enablePayID", "no")
		assert.ErrorIs(t, err, wizard.ErrFieldType)
		assert.Equal(t, true, w.Values()["enablePayID"])
	})

	t.Run("finished wizard", func(t *testing.T) {
		t.Parallel()

		exited := newWizard(t)
		require.NoError(t, exited.Back(context.Background()))

		var calls []submission.Application
		submitted := newWizard(t, stubSubmitter(&calls, nil))
		toReview(t, submitted)
		_, err := submitted.Submit(context.Background(), true)
		require.NoError(t, err)

		for name, w := range map[string]*wizard.Wizard{"exited": exited, "submitted": submitted} {
			before := w.Values()

			_, err := w.Edit("firstName", "John")
			assert.ErrorIs(t, err, wizard.ErrFinished, name)
			assert.ErrorIs(t, w.Toggle("enablePayID", false), wizard.ErrFinished, name)
			assert.ErrorIs(t, w.Choose("state", "VIC"), wizard.ErrFinished, name)

			if diff := cmp.Diff(before, w.Values()); diff != "" {
				t.Errorf("%s: values changed after finish (-want +got):\n%s", name, diff)
			}
		}
	})
}

func TestToggle(t *testing.T) {
	t.Parallel()

	w := newWizard(t)

	require.NoError(t, w.Toggle("enablePayID", false))
	assert.Equal(t, false, w.Values()["enablePayID"])

	assert.ErrorIs(t, w.Toggle("firstName", true), wizard.ErrFieldType)
	assert.ErrorIs(t, w.Toggle("favouriteColour", true), wizard.ErrUnknownField)
	assert.NotContains(t, w.Values(), "favouriteColour")
}

func TestChoose(t *testing.T) {
	t.Parallel()

	w := newWizard(t)

	require.NoError(t, w.Choose("state", "VIC"))
	assert.Equal(t, "VIC", w.Values()["state"])

	assert.ErrorIs(t, w.Choose("state", "XX"), wizard.ErrUnknownOption)
	assert.Equal(t, "VIC", w.Values()["state"])

	assert.ErrorIs(t, w.Choose("favouriteColour", "red"), wizard.ErrUnknownField)
	assert.ErrorIs(t, w.Choose("firstName", "Jane"), wizard.ErrFieldType)
}

func TestContinue(t *testing.T) {
	t.Parallel()

	t.Run("blocks on missing fields", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		errs, err := w.Continue(context.Background())
		require.NoError(t, err)

		want := field.Errors{
			"firstName":   "First Name is required",
			"lastName":    "Last Name is required",
			"email":       "Email Address is required",
			"phone":       "Mobile Number is required",
			"dateOfBirth": "Date of Birth is required",
		}
		if diff := cmp.Diff(want, errs); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, wizard.StepState(1), w.State())
		assert.Equal(t, want, w.Errors())
	})

	t.Run("edit clears only that error", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		_, err := w.Continue(context.Background())
		require.NoError(t, err)

		edit(t, w, "firstName", "Jane")
		assert.False(t, w.Errors().Has("firstName"))
		assert.True(t, w.Errors().Has("lastName"))
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		personalAU[1](t, w)
		edit(t, w, "email", "jane.example.com")

		errs, err := w.Continue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, field.Errors{"email": "Please enter a valid email address"}, errs)
		assert.Equal(t, 1, w.Step())
	})

	t.Run("validates only the current step", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		personalAU[1](t, w)

		errs, err := w.Continue(context.Background())
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, 2, w.Step())
	})

	t.Run("last step moves to review", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		toReview(t, w)

		assert.Equal(t, 0, w.Step())
		_, ok := w.CurrentStep()
		assert.False(t, ok)
		pos, total := w.Progress()
		assert.Equal(t, 4, pos)
		assert.Equal(t, 4, total)

		_, err := w.Continue(context.Background())
		assert.ErrorIs(t, err, wizard.ErrNotInStep)
	})
}

func TestBack(t *testing.T) {
	t.Parallel()

	t.Run("steps back and keeps values", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		personalAU[1](t, w)
		_, err := w.Continue(context.Background())
		require.NoError(t, err)

		require.NoError(t, w.Back(context.Background()))
		assert.Equal(t, 1, w.Step())
		assert.Equal(t, "Jane", w.Values()["firstName"])
	})

	t.Run("keeps stored errors", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		personalAU[1](t, w)
		_, err := w.Continue(context.Background())
		require.NoError(t, err)
		_, err = w.Continue(context.Background())
		require.NoError(t, err)
		require.True(t, w.Errors().Has("suburb"))

		require.NoError(t, w.Back(context.Background()))
		assert.True(t, w.Errors().Has("suburb"))
	})

	t.Run("first step exits", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)

		require.NoError(t, w.Back(context.Background()))
		assert.Equal(t, wizard.StateExited, w.State())
		assert.True(t, w.Done())

		assert.ErrorIs(t, w.Back(context.Background()), wizard.ErrFinished)
		_, err := w.Continue(context.Background())
		assert.ErrorIs(t, err, wizard.ErrNotInStep)
	})

	t.Run("review returns to last step", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t)
		toReview(t, w)

		require.NoError(t, w.Back(context.Background()))
		assert.Equal(t, wizard.StepState(4), w.State())
	})
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var calls []submission.Application
		w := newWizard(t, stubSubmitter(&calls, nil))
		toReview(t, w)

		receipt, err := w.Submit(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, field.AccountPersonal, receipt.AccountType)
		assert.Equal(t, wizard.StateSubmitted, w.State())
		assert.True(t, w.Done())

		got, ok := w.Receipt()
		assert.True(t, ok)
		assert.Equal(t, receipt, got)

		require.Len(t, calls, 1)
		assert.Equal(t, "AU", calls[0].Locale)
		assert.Equal(t, field.AccountPersonal, calls[0].AccountType)
		assert.Equal(t, "0412 345 678", calls[0].Data["phone"])
		assert.Equal(t, true, calls[0].Data["enablePaperlessStatements"])

		_, err = w.Submit(context.Background(), true)
		assert.ErrorIs(t, err, wizard.ErrNotInReview)
		assert.ErrorIs(t, w.Back(context.Background()), wizard.ErrFinished)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		t.Parallel()
		var calls []submission.Application
		w := newWizard(t, stubSubmitter(&calls, nil))
		toReview(t, w)

		_, err := w.Submit(context.Background(), false)
		assert.ErrorIs(t, err, wizard.ErrTermsNotAccepted)
		assert.Equal(t, wizard.StateReview, w.State())
		assert.Empty(t, calls)
	})

	t.Run("failure stays on review", func(t *testing.T) {
		t.Parallel()
		var calls []submission.Application
		w := newWizard(t, stubSubmitter(&calls, submission.ErrRejected))
		toReview(t, w)

		_, err := w.Submit(context.Background(), true)
		assert.ErrorIs(t, err, submission.ErrRejected)
		assert.Equal(t, wizard.StateReview, w.State())
		_, ok := w.Receipt()
		assert.False(t, ok)
	})

	t.Run("receipt without reference", func(t *testing.T) {
		t.Parallel()
		w := newWizard(t, wizard.WithSubmitter(wizard.SubmitterFunc(
			func(_ context.Context, app submission.Application) (submission.Receipt, error) {
				return submission.Receipt{AccountType: app.AccountType}, nil
			})))
		toReview(t, w)

		_, err := w.Submit(context.Background(), true)
		assert.True(t, statemachine.IsTransitionRejectedError(err))
		assert.Equal(t, wizard.StateReview, w.State())
		_, ok := w.Receipt()
		assert.False(t, ok)
	})

	t.Run("not on review", func(t *testing.T) {
		t.Parallel()
		var calls []submission.Application
		w := newWizard(t, stubSubmitter(&calls, nil))

		_, err := w.Submit(context.Background(), true)
		assert.ErrorIs(t, err, wizard.ErrNotInReview)
		assert.Empty(t, calls)
	})

	t.Run("through simulated service", func(t *testing.T) {
		t.Parallel()
		loc := locale.MustLookup("AU")
		svc := submission.NewService(submission.NewSimulated(loc.Bank, submission.WithDelay(0)))
		w := newWizard(t, wizard.WithSubmitter(svc))
		toReview(t, w)

		receipt, err := w.Submit(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, loc.Bank.BranchLabel, receipt.BranchLabel)
		assert.NotEqual(t, uuid.Nil, receipt.Reference)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := newWizard(t, wizard.WithSubmitter(wizard.SubmitterFunc(
			func(ctx context.Context, _ submission.Application) (submission.Receipt, error) {
				return submission.Receipt{}, ctx.Err()
			})))
		toReview(t, w)

		_, err := w.Submit(ctx, true)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, wizard.StateReview, w.State())
	})
}

func TestStepState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wizard.State("step_3"), wizard.StepState(3))
	assert.Equal(t, 3, wizard.StepState(3).Step())
	assert.Equal(t, 0, wizard.StateReview.Step())
	assert.Equal(t, 0, wizard.State("step_x").Step())
	assert.True(t, wizard.StateExited.Terminal())
	assert.False(t, wizard.StateReview.Terminal())
}
