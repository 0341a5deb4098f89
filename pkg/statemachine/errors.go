package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition: from, to and event must be set")
	ErrInvalidEvent      = errors.New("invalid event: event must be set")
	ErrInvalidState      = errors.New("invalid state: initial state must be set")
)

// ErrNoTransitionAvailable indicates no transition exists for the given state/event combination.
type ErrNoTransitionAvailable struct {
	StateName string
	EventName string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.StateName, e.EventName)
}

func NewErrNoTransitionAvailable(stateName, eventName string) *ErrNoTransitionAvailable {
	return &ErrNoTransitionAvailable{
		StateName: stateName,
		EventName: eventName,
	}
}

// ErrTransitionRejected indicates all candidate transitions were blocked by guards.
type ErrTransitionRejected struct {
	StateName string
	EventName string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.StateName, e.EventName)
}

func NewErrTransitionRejected(stateName, eventName string) *ErrTransitionRejected {
	return &ErrTransitionRejected{
		StateName: stateName,
		EventName: eventName,
	}
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
