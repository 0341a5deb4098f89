package statemachine

import "fmt"

// Option configures a machine during construction.
type Option[S, E ~string] func(*Machine[S, E]) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E ~string] func(*transitionConfig[S, E])

type transitionConfig[S, E ~string] struct {
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// New creates a machine in initialState configured by opts.
func New[S, E ~string](initialState S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initialState == "" {
		return nil, ErrInvalidState
	}

	m := newMachine[S, E](initialState)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithTransition adds a single transition.
func WithTransition[S, E ~string](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		cfg := &transitionConfig[S, E]{}
		for _, opt := range opts {
			opt(cfg)
		}
		if err := m.AddTransition(from, to, event, cfg.guards, cfg.actions); err != nil {
			return fmt.Errorf("failed to add transition %s->%s on %s: %w", from, to, event, err)
		}
		return nil
	}
}

// WithListener registers a callback invoked after every successful transition.
func WithListener[S, E ~string](l Listener[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
		return nil
	}
}

// WithGuard adds a single guard to a transition.
func WithGuard[S, E ~string](guard Guard[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

// WithAction adds a single action to a transition.
func WithAction[S, E ~string](action Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}
