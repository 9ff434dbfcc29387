package fsm

import (
	"reflect"
	"testing"
)

type ids struct {
	opening, title, gameplay, pause StateID
}

func newGameMachine() (*Machine[string], ids) {
	m := New[string]()
	var s ids
	s.opening = m.AddState("opening", false)
	s.title = m.AddState("title", false)
	s.gameplay = m.AddState("gameplay", true)
	s.pause = m.AddState("pause", false)

	m.AddTrans(s.opening, s.title, TransTitle)
	m.AddTrans(s.title, s.gameplay, TransGameplay)
	m.AddTrans(s.gameplay, s.pause, TransPause)
	m.AddTrans(s.pause, s.gameplay, TransResume)
	m.SetInitial(s.opening)
	m.Start()
	return m, s
}

func TestAddStateIDs(t *testing.T) {
	m := New[int]()
	for i := 0; i < 4; i++ {
		if id := m.AddState(i*10, false); id != StateID(i) {
			t.Errorf("AddState #%d returned %d", i, id)
		}
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", m.Len())
	}
	if m.Handler(2) != 20 {
		t.Errorf("Handler(2) = %d, expected 20", m.Handler(2))
	}
}

func TestTransitionWalk(t *testing.T) {
	m, s := newGameMachine()

	if !reflect.DeepEqual(m.UIStack(), []StateID{s.opening}) {
		t.Fatalf("initial stack = %v", m.UIStack())
	}

	steps := []struct {
		symbol  Trans
		current StateID
		stack   []StateID
	}{
		{TransTitle, s.title, []StateID{s.title}},
		{TransGameplay, s.gameplay, []StateID{s.gameplay}},
		{TransPause, s.pause, []StateID{s.gameplay, s.pause}},
		{TransResume, s.gameplay, []StateID{s.gameplay}},
		{TransPause, s.pause, []StateID{s.gameplay, s.pause}},
	}

	for _, step := range steps {
		t.Run(step.symbol.String(), func(t *testing.T) {
			m.TakeChanged()
			if !m.Feed(step.symbol) {
				t.Fatalf("Feed(%v) was rejected", step.symbol)
			}
			if m.Current() != step.current {
				t.Errorf("Current() = %d, expected %d", m.Current(), step.current)
			}
			if !reflect.DeepEqual(m.UIStack(), step.stack) {
				t.Errorf("UIStack() = %v, expected %v", m.UIStack(), step.stack)
			}
			if !m.TakeChanged() {
				t.Error("changed flag not set")
			}
		})
	}
}

func TestUnknownTransitionIsNoop(t *testing.T) {
	m, s := newGameMachine()
	m.TakeChanged()

	for _, symbol := range []Trans{TransGameplay, TransPause, TransResume} {
		if m.Feed(symbol) {
			t.Errorf("Feed(%v) from opening should be ignored", symbol)
		}
	}
	if m.Current() != s.opening {
		t.Errorf("Current() = %d, expected opening", m.Current())
	}
	if !reflect.DeepEqual(m.UIStack(), []StateID{s.opening}) {
		t.Errorf("UIStack() = %v", m.UIStack())
	}
	if m.TakeChanged() {
		t.Error("ignored symbols must not set the changed flag")
	}
}

func TestStoppedMachineIgnoresInput(t *testing.T) {
	m, s := newGameMachine()
	m.Stop()

	if m.Feed(TransTitle) {
		t.Error("Feed should be a no-op while stopped")
	}
	if m.Current() != s.opening {
		t.Error("stopped machine moved")
	}

	calls := 0
	m.Update(func(StateID, string) { calls++ })
	m.Render(func(StateID, string) { calls++ })
	if calls != 0 {
		t.Errorf("handlers called %d times while stopped", calls)
	}

	m.Start()
	if !m.Feed(TransTitle) {
		t.Error("Feed should work after Start")
	}
}

func TestUpdateAndRenderDispatch(t *testing.T) {
	m, _ := newGameMachine()
	m.Feed(TransTitle)
	m.Feed(TransGameplay)
	m.Feed(TransPause)

	var updated []string
	m.Update(func(_ StateID, h string) { updated = append(updated, h) })
	if !reflect.DeepEqual(updated, []string{"pause"}) {
		t.Errorf("Update dispatched to %v, expected only pause", updated)
	}

	var rendered []string
	m.Render(func(_ StateID, h string) { rendered = append(rendered, h) })
	if !reflect.DeepEqual(rendered, []string{"gameplay", "pause"}) {
		t.Errorf("Render order = %v, expected [gameplay pause]", rendered)
	}
}

func TestPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"current on empty machine", func() { New[int]().Current() }},
		{"current without initial", func() {
			m := New[int]()
			m.AddState(0, false)
			m.Current()
		}},
		{"trans from unregistered", func() {
			m := New[int]()
			a := m.AddState(0, false)
			m.AddTrans(a, 5, TransTitle)
		}},
		{"initial unregistered", func() { New[int]().SetInitial(0) }},
		{"feed unknown symbol", func() {
			m, _ := newGameMachine()
			m.Feed(Trans(42))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestTargetsIsCopy(t *testing.T) {
	m, s := newGameMachine()
	targets := m.Targets(s.gameplay)
	if targets[TransPause] != s.pause || len(targets) != 1 {
		t.Fatalf("Targets(gameplay) = %v", targets)
	}
	targets[TransTitle] = s.title
	if len(m.Targets(s.gameplay)) != 1 {
		t.Error("mutating Targets result changed the table")
	}
}
