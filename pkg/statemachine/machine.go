package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a thread-safe in-memory finite state machine.
// Transitions are indexed as [from][event][]Transition.
type Machine[S, E ~string] struct {
	currentState S
	transitions  map[S]map[E][]Transition[S, E]
	listeners    []Listener[S, E]
	mu           sync.RWMutex
}

func newMachine[S, E ~string](initialState S) *Machine[S, E] {
	return &Machine[S, E]{
		currentState: initialState,
		transitions:  make(map[S]map[E][]Transition[S, E]),
	}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// AddTransition registers a transition. Several transitions may share the
// same from state and event; the first whose guards pass wins.
func (m *Machine[S, E]) AddTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) error {
	if from == "" || to == "" || event == "" {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E][]Transition[S, E])
	}
	m.transitions[from][event] = append(m.transitions[from][event], Transition[S, E]{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

// Fire triggers event with data passed to guards and actions.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	if event == "" {
		return ErrInvalidEvent
	}

	from, to, err := m.fire(ctx, event, data)
	if err != nil {
		return err
	}

	m.mu.RLock()
	listeners := m.listeners
	m.mu.RUnlock()
	for _, l := range listeners {
		l(ctx, from, to, event)
	}
	return nil
}

func (m *Machine[S, E]) fire(ctx context.Context, event E, data any) (S, S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.currentState
	transitions := m.transitions[from][event]
	if len(transitions) == 0 {
		return from, from, NewErrNoTransitionAvailable(string(from), string(event))
	}

	t, ok := m.pick(ctx, transitions, event, data)
	if !ok {
		return from, from, NewErrTransitionRejected(string(from), string(event))
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			return from, from, fmt.Errorf("action failed: %w", err)
		}
	}

	m.currentState = t.To
	return from, t.To, nil
}

// pick returns the first transition whose guards all pass. Caller holds the lock.
func (m *Machine[S, E]) pick(ctx context.Context, transitions []Transition[S, E], event E, data any) (Transition[S, E], bool) {
	for _, t := range transitions {
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.currentState, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition[S, E]{}, false
}
