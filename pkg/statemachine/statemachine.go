package statemachine

import "sync"

// State is a named state of the machine.
type State string

// Event is a named trigger for a state change.
type Event string

// Transition defines one legal state change: when the machine is in From and
// Event fires, it moves to To.
type Transition struct {
	From  State
	Event Event
	To    State
}

// Machine is a thread-safe in-memory finite state machine. The transition
// table is fixed at construction; Fire is the only mutation and is atomic, so
// a machine doubles as a re-entrancy guard: once an event has moved it out of
// a state, concurrent fires of the same event are rejected until a transition
// leads back.
type Machine struct {
	mu      sync.RWMutex
	initial State
	current State
	table   map[State]map[Event]State
}

// New builds a machine starting at initial with the given transition table.
func New(initial State, transitions ...Transition) *Machine {
	table := make(map[State]map[Event]State)
	for _, t := range transitions {
		if _, ok := table[t.From]; !ok {
			table[t.From] = make(map[Event]State)
		}
		table[t.From][t.Event] = t.To
	}
	return &Machine{
		initial: initial,
		current: initial,
		table:   table,
	}
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies the event and returns the resulting state. It returns a
// *TransitionError when the current state has no transition for the event,
// leaving the state unchanged.
func (m *Machine) Fire(event Event) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := m.table[m.current][event]
	if !ok {
		return m.current, &TransitionError{State: m.current, Event: event}
	}

	m.current = next
	return next, nil
}

// CanFire reports whether the event has a transition from the current state.
func (m *Machine) CanFire(event Event) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.table[m.current][event]
	return ok
}

// Reset returns the machine to its initial state unconditionally.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
