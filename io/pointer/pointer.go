// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
package pointer

import (
	"minitext.org/f32"
	"minitext.org/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the coordinates of the event in window
	// pixel space.
	Position f32.Point
	// Scroll is the scroll amount, if any. Its unit is given
	// by ScrollUnit.
	Scroll     f32.Point
	ScrollUnit ScrollUnit
	// Modifiers is the set of active modifiers when
	// the mouse button was pressed.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint8

// ScrollUnit is the unit of a scroll amount.
type ScrollUnit uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Scroll of a pointer.
	Scroll
)

const (
	// Lines scroll amounts count text rows, as reported by
	// mouse wheels.
	Lines ScrollUnit = iota
	// Pixels scroll amounts count pixels, as reported by
	// touch pads.
	Pixels
)

func (Event) ImplementsEvent() {}

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Type")
	}
}
