package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// EventKind identifies the kind of a platform event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseMove
	EventMouseButton
	EventQuit
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseButton:
		return "mouse-button"
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	}
	return "unknown"
}

// Event is one input event from the windowing backend
type Event struct {
	Kind   EventKind
	Key    glfw.Key
	Button glfw.MouseButton
	X, Y   float64

	// Framebuffer size in pixels, for resize events
	Width, Height int
}

// KeyDown builds a key-down event.
func KeyDown(key glfw.Key) Event { return Event{Kind: EventKeyDown, Key: key} }

// KeyUp builds a key-up event.
func KeyUp(key glfw.Key) Event { return Event{Kind: EventKeyUp, Key: key} }

// MouseMove builds a pointer motion event at an absolute position.
func MouseMove(x, y float64) Event { return Event{Kind: EventMouseMove, X: x, Y: y} }

// MouseButton builds a mouse button press event.
func MouseButton(x, y float64, button glfw.MouseButton) Event {
	return Event{Kind: EventMouseButton, X: x, Y: y, Button: button}
}

// Quit builds a window close event.
func Quit() Event { return Event{Kind: EventQuit} }

// Resize builds a framebuffer size change event.
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// Queue buffers events delivered by backend callbacks until the event
// loop drains them.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
