package wizard

import "errors"

var (
	// ErrEmptyFlow is returned by New for a flow without steps.
	ErrEmptyFlow = errors.New("flow has no steps")

	// ErrNotInStep is returned by Continue outside of a form step.
	ErrNotInStep = errors.New("wizard is not on a form step")

	// ErrNotInReview is returned by Submit before the review screen is reached.
	ErrNotInReview = errors.New("wizard is not on the review screen")

	// ErrFinished is returned by Back and the edit methods once the
	// application was submitted or the applicant left the flow.
	ErrFinished = errors.New("wizard has finished")

	// ErrTermsNotAccepted is returned by Submit until the terms are accepted.
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")

	// ErrUnknownField is returned for keys that are not part of the flow.
	ErrUnknownField = errors.New("unknown field")

	// ErrFieldType is returned when a field is edited through the wrong method,
	// such as Edit on a toggle.
	ErrFieldType = errors.New("wrong method for field type")

	// ErrUnknownOption is returned by Choose for values outside the field's options.
	ErrUnknownOption = errors.New("unknown option")
)
