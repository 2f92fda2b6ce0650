// Package input drains the SDL2 event queue.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a window-system event the render loop cares about. Everything
// else SDL reports is drained and dropped.
type Event struct {
	Resize bool
	Width  int
	Height int
}

// Pump polls and dispatches pending window-system events.
type Pump struct {
	events []Event
}

// New creates an event pump.
func New() *Pump {
	return &Pump{
		events: make([]Event, 0, 4),
	}
}

// Update drains the event queue. It returns true when the window should
// close.
func (p *Pump) Update() bool {
	p.events = p.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				p.events = append(p.events, Event{
					Resize: true,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	return false
}

// Events returns the events collected by the last Update.
func (p *Pump) Events() []Event {
	return p.events
}
