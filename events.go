package culling

import (
	"github.com/akmonengine/culling/hull"
)

const (
	VISIBLE_ENTER EventType = iota
	VISIBLE_STAY
	VISIBLE_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// VisibleEnterEvent is sent when an object was culled by the previous pass and is not anymore
type VisibleEnterEvent struct {
	Object *Object
	State  hull.IntersectionState
}

func (e VisibleEnterEvent) Type() EventType { return VISIBLE_ENTER }

// VisibleStayEvent is sent when an object remains visible across two passes
type VisibleStayEvent struct {
	Object *Object
	State  hull.IntersectionState
}

func (e VisibleStayEvent) Type() EventType { return VISIBLE_STAY }

// VisibleExitEvent is sent when a visible object gets culled
type VisibleExitEvent struct {
	Object *Object
}

func (e VisibleExitEvent) Type() EventType { return VISIBLE_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Visibility tracking for Enter/Stay/Exit detection
	previousVisible map[*Object]bool
	currentVisible  map[*Object]bool
}

func NewEvents() Events {
	return Events{
		listeners:       make(map[EventType][]EventListener),
		buffer:          make([]Event, 0, 256),
		previousVisible: make(map[*Object]bool),
		currentVisible:  make(map[*Object]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordVisible buffers Enter/Stay events for the results of a culling pass,
// in result order, then Exit events for objects no longer visible
func (e *Events) recordVisible(results []Result) {
	if e.previousVisible == nil {
		e.previousVisible = make(map[*Object]bool)
		e.currentVisible = make(map[*Object]bool)
	}

	for _, r := range results {
		e.currentVisible[r.Object] = true

		if e.previousVisible[r.Object] {
			e.buffer = append(e.buffer, VisibleStayEvent{Object: r.Object, State: r.State})
		} else {
			e.buffer = append(e.buffer, VisibleEnterEvent{Object: r.Object, State: r.State})
		}
	}

	for object := range e.previousVisible {
		if !e.currentVisible[object] {
			e.buffer = append(e.buffer, VisibleExitEvent{Object: object})
		}
	}

	// Swap for next pass and clear current
	e.previousVisible, e.currentVisible = e.currentVisible, e.previousVisible
	clear(e.currentVisible)
}

// forget drops the tracking of a removed object without emitting an Exit event
func (e *Events) forget(object *Object) {
	delete(e.previousVisible, object)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
