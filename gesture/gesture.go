// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events and detect higher level
actions such as clicks and scrolling.
*/
package gesture

import (
	"minitext.org/f32"
	"minitext.org/io/key"
	"minitext.org/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type      ClickType
	Position  f32.Point
	Modifiers key.Modifiers
}

type ClickType uint8

// Scroll reduces scroll events to distances in pixels.
type Scroll struct {
	Axis Axis
	// Leftover scroll.
	scroll float32
}

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reported when a click action
	// is complete.
	TypeClick
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update processes a pointer event and returns the resulting click
// event, if any. hit reports whether the event position is inside
// the clickable area.
func (c *Click) Update(e pointer.Event, hit bool) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed && hit {
			return ClickEvent{Type: TypeClick, Position: e.Position, Modifiers: e.Modifiers}, true
		}
	case pointer.Cancel:
		c.state = StateNormal
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		c.state = StatePressed
		return ClickEvent{Type: TypePress, Position: e.Position, Modifiers: e.Modifiers}, true
	case pointer.Move:
		if !hit {
			c.state = StateNormal
		} else if c.state < StateFocused {
			c.state = StateFocused
		}
	}
	return ClickEvent{}, false
}

// Update returns the whole pixels scrolled by e along the axis of s.
// Line scroll amounts are scaled by lineHeight. Fractions are carried
// over to later events.
func (s *Scroll) Update(e pointer.Event, lineHeight int) int {
	if e.Kind != pointer.Scroll {
		return 0
	}
	d := e.Scroll.X
	if s.Axis == Vertical {
		d = e.Scroll.Y
	}
	if e.ScrollUnit == pointer.Lines {
		d *= float32(lineHeight)
	}
	s.scroll += d
	iscroll := int(s.scroll)
	s.scroll -= float32(iscroll)
	return iscroll
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
