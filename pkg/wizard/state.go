package wizard

import (
	"strconv"
	"strings"
)

// State is a position in the wizard: one of the form steps, the review
// screen or a terminal state.
type State string

// Event drives the wizard between states.
type Event string

const (
	StateReview    State = "review"
	StateSubmitted State = "submitted"
	StateExited    State = "exited"

	EventContinue Event = "continue"
	EventBack     Event = "back"
	EventSubmit   Event = "submit"
)

const stepPrefix = "step_"

// StepState names the state of the 1-based form step i.
func StepState(i int) State {
	return State(stepPrefix + strconv.Itoa(i))
}

// Step returns the 1-based step index of s, or 0 when s is not a form step.
func (s State) Step() int {
	rest, ok := strings.CutPrefix(string(s), stepPrefix)
	if !ok {
		return 0
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 1 {
		return 0
	}
	return i
}

// Terminal reports whether no further events are accepted.
func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateExited
}

func (s State) String() string {
	return string(s)
}
