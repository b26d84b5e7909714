// Package statemachine implements a small finite state machine with a fixed
// transition table and atomic event firing.
//
// States and events are plain named strings; the table is declared up front
// and never changes, so Fire is an O(1) lookup under a single lock. Because
// Fire both checks and applies a transition atomically, the machine can serve
// as a re-entrancy guard: the form engine uses it to reject overlapping
// submit attempts without a separate flag.
//
//	m := statemachine.New("idle",
//	    statemachine.Transition{From: "idle", Event: "start", To: "running"},
//	    statemachine.Transition{From: "running", Event: "stop", To: "idle"},
//	)
//	if _, err := m.Fire("start"); err != nil {
//	    // already running
//	}
package statemachine
