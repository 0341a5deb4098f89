package statemachine

import "context"

// Action executes side effects during a transition. Returning an error
// prevents the transition.
type Action[S, E ~string] func(ctx context.Context, from, to S, event E, data any) error

// Guard evaluates whether a transition may proceed based on runtime data.
type Guard[S, E ~string] func(ctx context.Context, from S, event E, data any) bool

// Listener observes a completed transition. It runs after the state changed
// and outside the machine lock, so it may read the machine.
type Listener[S, E ~string] func(ctx context.Context, from, to S, event E)

// Transition defines a state change triggered by an event, with optional
// guards and actions.
type Transition[S, E ~string] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for the transition to proceed
	Actions []Action[S, E] // Executed in order before the state changes
}
