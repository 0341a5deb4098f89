package terminal

import "errors"

var (
	// ErrAborted signals the applicant interrupted a prompt (Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrExited signals the applicant left the flow from its first step.
	ErrExited = errors.New("terminal: onboarding exited")
)
