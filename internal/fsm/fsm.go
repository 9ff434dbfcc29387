// Package fsm implements a pushdown state machine with a static transition
// table and a render stack.
//
// States are registered once and referred to by StateID. The machine keeps
// two views of them: the current state, which receives updates, and the UI
// stack, which is rendered bottom to top. A state registered with preserve
// stays on the UI stack when the machine moves past it, so a pause screen
// can draw over a frozen game.
package fsm

import "fmt"

// StateID identifies a registered state. IDs are assigned from 0 in
// registration order.
type StateID int

// Trans is a transition symbol.
type Trans int

const (
	TransTitle Trans = iota
	TransGameplay
	TransPause
	TransResume

	transCount
)

// String returns a human-readable name for the symbol.
func (t Trans) String() string {
	switch t {
	case TransTitle:
		return "Title"
	case TransGameplay:
		return "Gameplay"
	case TransPause:
		return "Pause"
	case TransResume:
		return "Resume"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the defined symbols.
func (t Trans) Valid() bool {
	return t >= 0 && t < transCount
}

type state[H any] struct {
	handler  H
	preserve bool
	targets  map[Trans]StateID
}

// Machine is a pushdown automaton over handlers of type H.
// It is not safe for concurrent use.
type Machine[H any] struct {
	states  []state[H]
	current StateID
	started bool // SetInitial has been called
	running bool
	changed bool
	stack   []StateID
}

// New returns an empty, stopped machine.
func New[H any]() *Machine[H] {
	return &Machine[H]{}
}

// AddState registers a handler and returns its id.
func (m *Machine[H]) AddState(handler H, preserve bool) StateID {
	m.states = append(m.states, state[H]{
		handler:  handler,
		preserve: preserve,
		targets:  make(map[Trans]StateID),
	})
	return StateID(len(m.states) - 1)
}

// AddTrans makes symbol move the machine from one state to another.
// It panics if either id is unregistered or the symbol is unknown.
func (m *Machine[H]) AddTrans(from, to StateID, symbol Trans) {
	m.mustExist(from)
	m.mustExist(to)
	mustBeValid(symbol)
	m.states[from].targets[symbol] = to
}

// SetInitial sets the current state and seeds the UI stack with it.
// It panics if id is unregistered.
func (m *Machine[H]) SetInitial(id StateID) {
	m.mustExist(id)
	m.current = id
	m.started = true
	m.stack = append(m.stack[:0], id)
	m.changed = true
}

// Start lets the machine accept input.
func (m *Machine[H]) Start() {
	m.running = true
}

// Stop freezes the machine; Feed, Update and Render become no-ops.
func (m *Machine[H]) Stop() {
	m.running = false
}

// Running reports whether the machine has been started and not stopped.
func (m *Machine[H]) Running() bool {
	return m.running
}

// Feed applies a transition symbol to the current state. It returns true
// if the symbol moved the machine, and false if the current state has no
// transition for it or the machine is stopped.
// It panics if symbol is not a defined Trans.
func (m *Machine[H]) Feed(symbol Trans) bool {
	mustBeValid(symbol)
	if !m.running || !m.started {
		return false
	}

	target, ok := m.states[m.current].targets[symbol]
	if !ok {
		return false
	}

	if !m.states[m.current].preserve && len(m.stack) > 0 {
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.current = target

	// Returning to a state that is still on the stack unwinds to it.
	if i := m.indexOf(target); i >= 0 {
		m.stack = m.stack[:i+1]
	} else {
		m.stack = append(m.stack, target)
	}
	m.changed = true
	return true
}

// Current returns the current state.
// It panics if no state is registered or SetInitial was never called.
func (m *Machine[H]) Current() StateID {
	if len(m.states) == 0 {
		panic("fsm: no states registered")
	}
	if !m.started {
		panic("fsm: initial state not set")
	}
	return m.current
}

// Handler returns the handler registered under id.
func (m *Machine[H]) Handler(id StateID) H {
	m.mustExist(id)
	return m.states[id].handler
}

// Preserve reports whether id stays on the UI stack when left.
func (m *Machine[H]) Preserve(id StateID) bool {
	m.mustExist(id)
	return m.states[id].preserve
}

// Targets returns the transitions out of id.
func (m *Machine[H]) Targets(id StateID) map[Trans]StateID {
	m.mustExist(id)
	out := make(map[Trans]StateID, len(m.states[id].targets))
	for k, v := range m.states[id].targets {
		out[k] = v
	}
	return out
}

// Len returns the number of registered states.
func (m *Machine[H]) Len() int {
	return len(m.states)
}

// UIStack returns a copy of the render stack, bottom first.
func (m *Machine[H]) UIStack() []StateID {
	out := make([]StateID, len(m.stack))
	copy(out, m.stack)
	return out
}

// Update calls fn with the current state.
func (m *Machine[H]) Update(fn func(id StateID, handler H)) {
	if !m.running || !m.started {
		return
	}
	fn(m.current, m.states[m.current].handler)
}

// Render calls fn for every state on the UI stack, bottom to top.
func (m *Machine[H]) Render(fn func(id StateID, handler H)) {
	if !m.running {
		return
	}
	for _, id := range m.stack {
		fn(id, m.states[id].handler)
	}
}

// TakeChanged reports whether the machine moved since the last call, and
// resets the flag.
func (m *Machine[H]) TakeChanged() bool {
	changed := m.changed
	m.changed = false
	return changed
}

func (m *Machine[H]) indexOf(id StateID) int {
	for i, s := range m.stack {
		if s == id {
			return i
		}
	}
	return -1
}

func (m *Machine[H]) mustExist(id StateID) {
	if id < 0 || int(id) >= len(m.states) {
		panic(fmt.Sprintf("fsm: state %d is not registered", id))
	}
}

func mustBeValid(symbol Trans) {
	if !symbol.Valid() {
		panic(fmt.Sprintf("fsm: unknown transition symbol %d", symbol))
	}
}
