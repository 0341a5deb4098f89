// Package statemachine provides a small, type-safe finite state machine.
//
// States and events are any string-based types, so domain code declares its
// own constants and gets compile-time checking for free:
//
//	type State string
//	type Event string
//
//	const (
//	    StepOne State = "step_1"
//	    Review  State = "review"
//	    Next    Event = "continue"
//	)
//
//	m, err := statemachine.New(StepOne,
//	    statemachine.WithTransition(StepOne, Review, Next,
//	        statemachine.WithGuard[State, Event](stepIsValid),
//	    ),
//	)
//	err = m.Fire(ctx, Next, nil)
//
// # Guards, Actions and Listeners
//
// Guards veto a transition based on runtime data. When several transitions
// share the same source state and event, the first one whose guards pass
// wins. Actions run after the guards and before the state changes; an action
// error aborts the transition. Listeners observe completed transitions and
// run outside the lock.
//
// # Error Handling
//
// Fire distinguishes "transition not defined" from "guard rejected":
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// # Concurrency
//
// Machine guards its state with a RWMutex. Current and Is share the lock;
// Fire and AddTransition serialize.
package statemachine
