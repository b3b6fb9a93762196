// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Handler is implemented by the receivers of events, such as an
// editing session.
type Handler interface {
	// Event processes e. Errors do not necessarily end event
	// processing; their meaning is up to the Handler.
	Event(e Event) error
}
