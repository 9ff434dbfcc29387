package core

// Key is a physical key the games care about, abstracted from the
// frontend's own key codes.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyClear // C - clear selection
	KeyQuit  // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyOther:
		return "Other"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyClear:
		return "Clear"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// EventKind discriminates Event.
type EventKind int

const (
	PointerMoved EventKind = iota
	ButtonPressed
	ButtonReleased
	KeyPressed
	KeyReleased
)

// Event is a single input occurrence. X and Y are set for pointer and
// button events, Button for button events and Key for key events.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button Button
	Key    Key
}

// Click is a press followed by a release of the same button.
type Click struct {
	Button Button
	X, Y   float64
}

// InputFrame is the input snapshot for one frame. It carries the raw events
// of the frame plus state accumulated across frames.
type InputFrame struct {
	Events []Event

	// PointerX and PointerY hold the last known pointer position.
	PointerX, PointerY float64
	// HasPointer is false until the pointer has been seen.
	HasPointer bool

	Keys    map[Key]bool
	Buttons map[Button]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys:    make(map[Key]bool),
		Buttons: make(map[Button]bool),
	}
}

// KeyDown reports whether k is held.
func (f InputFrame) KeyDown(k Key) bool {
	return f.Keys[k]
}

// ButtonDown reports whether b is held.
func (f InputFrame) ButtonDown(b Button) bool {
	return f.Buttons[b]
}

// KeyPressedNow reports whether k was pressed during this frame.
func (f InputFrame) KeyPressedNow(k Key) bool {
	return f.hasKeyEvent(KeyPressed, k)
}

// KeyReleasedNow reports whether k was released during this frame.
func (f InputFrame) KeyReleasedNow(k Key) bool {
	return f.hasKeyEvent(KeyReleased, k)
}

// AnyKeyPressed reports whether any key was pressed during this frame.
func (f InputFrame) AnyKeyPressed() bool {
	for _, e := range f.Events {
		if e.Kind == KeyPressed {
			return true
		}
	}
	return false
}

func (f InputFrame) hasKeyEvent(kind EventKind, k Key) bool {
	for _, e := range f.Events {
		if e.Kind == kind && e.Key == k {
			return true
		}
	}
	return false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Events = append([]Event(nil), f.Events...)
	clone.Clicks = append([]Click(nil), f.Clicks...)
	clone.PointerX, clone.PointerY, clone.HasPointer = f.PointerX, f.PointerY, f.HasPointer
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	for k, v := range f.Buttons {
		clone.Buttons[k] = v
	}
	return clone
}

// InputHandler turns the stream of events from a frontend into per-frame
// snapshots. Held keys and buttons persist across frames; events and
// clicks are cleared by Frame. Several physical keys may map to one Key,
// so a Key stays held until every press has been released.
type InputHandler struct {
	cur     InputFrame
	pressAt map[Button][2]float64
	presses map[Key]int
}

// NewInputHandler creates an input handler with nothing held.
func NewInputHandler() *InputHandler {
	return &InputHandler{
		cur:     NewInputFrame(),
		pressAt: make(map[Button][2]float64),
		presses: make(map[Key]int),
	}
}

// Push records one event.
func (h *InputHandler) Push(e Event) {
	h.cur.Events = append(h.cur.Events, e)
	switch e.Kind {
	case PointerMoved:
		h.move(e.X, e.Y)
	case ButtonPressed:
		h.move(e.X, e.Y)
		h.cur.Buttons[e.Button] = true
		h.pressAt[e.Button] = [2]float64{e.X, e.Y}
	case ButtonReleased:
		h.move(e.X, e.Y)
		if _, ok := h.pressAt[e.Button]; ok {
			h.cur.Clicks = append(h.cur.Clicks, Click{Button: e.Button, X: e.X, Y: e.Y})
			delete(h.pressAt, e.Button)
		}
		delete(h.cur.Buttons, e.Button)
	case KeyPressed:
		h.presses[e.Key]++
		h.cur.Keys[e.Key] = true
	case KeyReleased:
		if h.presses[e.Key] > 1 {
			h.presses[e.Key]--
			return
		}
		delete(h.presses, e.Key)
		delete(h.cur.Keys, e.Key)
	}
}

func (h *InputHandler) move(x, y float64) {
	h.cur.PointerX, h.cur.PointerY = x, y
	h.cur.HasPointer = true
}

// Frame returns the snapshot accumulated since the previous call and starts
// a new frame.
func (h *InputHandler) Frame() InputFrame {
	out := h.cur.Clone()
	h.cur.Events = h.cur.Events[:0]
	h.cur.Clicks = h.cur.Clicks[:0]
	return out
}
