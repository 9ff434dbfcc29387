package core

import "testing"

func TestInputHandlerHeldState(t *testing.T) {
	h := NewInputHandler()
	h.Push(Event{Kind: KeyPressed, Key: KeyLeft})

	f := h.Frame()
	if !f.KeyDown(KeyLeft) || !f.KeyPressedNow(KeyLeft) {
		t.Fatal("KeyLeft should be held and pressed this frame")
	}
	if !f.AnyKeyPressed() {
		t.Error("AnyKeyPressed should be true")
	}

	f = h.Frame()
	if !f.KeyDown(KeyLeft) {
		t.Error("held key should persist into the next frame")
	}
	if f.KeyPressedNow(KeyLeft) || len(f.Events) != 0 {
		t.Error("events should not repeat across frames")
	}

	h.Push(Event{Kind: KeyReleased, Key: KeyLeft})
	f = h.Frame()
	if f.KeyDown(KeyLeft) || !f.KeyReleasedNow(KeyLeft) {
		t.Error("release should clear the held key and be reported")
	}
}

func TestInputHandlerSharedKey(t *testing.T) {
	// W and the up arrow both report KeyUp.
	h := NewInputHandler()
	h.Push(Event{Kind: KeyPressed, Key: KeyUp})
	h.Push(Event{Kind: KeyPressed, Key: KeyUp})
	h.Frame()

	h.Push(Event{Kind: KeyReleased, Key: KeyUp})
	f := h.Frame()
	if !f.KeyDown(KeyUp) {
		t.Fatal("KeyUp should stay held while one of its keys is down")
	}
	if !f.KeyReleasedNow(KeyUp) {
		t.Error("the release event should still be reported")
	}

	h.Push(Event{Kind: KeyReleased, Key: KeyUp})
	if f = h.Frame(); f.KeyDown(KeyUp) {
		t.Error("KeyUp should clear once both keys are released")
	}

	h.Push(Event{Kind: KeyReleased, Key: KeyUp})
	h.Push(Event{Kind: KeyPressed, Key: KeyUp})
	if f = h.Frame(); !f.KeyDown(KeyUp) {
		t.Error("a stray release must not swallow the next press")
	}
}

func TestInputHandlerClicks(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		clicks int
	}{
		{
			name: "press and release",
			events: []Event{
				{Kind: ButtonPressed, Button: ButtonLeft, X: 1, Y: 2},
				{Kind: ButtonReleased, Button: ButtonLeft, X: 3, Y: 4},
			},
			clicks: 1,
		},
		{
			name: "release without press",
			events: []Event{
				{Kind: ButtonReleased, Button: ButtonLeft},
			},
			clicks: 0,
		},
		{
			name: "different buttons",
			events: []Event{
				{Kind: ButtonPressed, Button: ButtonLeft},
				{Kind: ButtonReleased, Button: ButtonRight},
			},
			clicks: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewInputHandler()
			for _, e := range tc.events {
				h.Push(e)
			}
			f := h.Frame()
			if len(f.Clicks) != tc.clicks {
				t.Errorf("got %d clicks, expected %d", len(f.Clicks), tc.clicks)
			}
		})
	}
}

func TestInputHandlerPointer(t *testing.T) {
	h := NewInputHandler()
	if h.Frame().HasPointer {
		t.Error("pointer should be unknown before any event")
	}
	h.Push(Event{Kind: PointerMoved, X: 10, Y: 20})
	h.Push(Event{Kind: ButtonPressed, Button: ButtonLeft, X: 11, Y: 21})
	f := h.Frame()
	if !f.HasPointer || f.PointerX != 11 || f.PointerY != 21 {
		t.Errorf("pointer = (%v,%v) seen=%v", f.PointerX, f.PointerY, f.HasPointer)
	}
	if !f.ButtonDown(ButtonLeft) {
		t.Error("left button should be held")
	}
}

func TestClampDelta(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		dt, expected float64
	}{
		{0.016, 0.016},
		{5, 0.1},
		{-1, 0},
	}
	for _, tc := range tests {
		if got := cfg.ClampDelta(tc.dt); got != tc.expected {
			t.Errorf("ClampDelta(%v) = %v, expected %v", tc.dt, got, tc.expected)
		}
	}
}
