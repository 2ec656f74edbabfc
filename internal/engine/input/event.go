// Package input defines the platform-neutral events consumed by the viewer.
package input

// EventType identifies what happened.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
	EventTouchDown
	EventTouchMove
	EventTouchUp
)

// Key is a physical key the viewer binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyTab
	KeySpace
	KeyF12
	KeyM
	KeyG
	KeyB
	KeyF
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Digit returns n for Key0..Key9.
func (k Key) Digit() (int, bool) {
	if k < Key0 || k > Key9 {
		return 0, false
	}
	return int(k - Key0), true
}

// Mouse buttons.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event. Positions are in window
// coordinates; touch positions are already scaled from normalized units.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Wheel  float32
	Finger int64
}

// Queue collects the events of one frame.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Reset drops the previous frame's events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}

// Push appends e.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Events returns the events since the last Reset.
func (q *Queue) Events() []Event {
	return q.events
}

// Quit reports whether a quit was requested this frame.
func (q *Queue) Quit() bool {
	for _, e := range q.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (q *Queue) IsKeyPressed(k Key) bool {
	for _, e := range q.events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}
