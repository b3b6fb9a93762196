// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events.
package key

import (
	"fmt"
	"strings"
)

// Event is generated when a key is pressed or released.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// An EditEvent requests an edit by an input method. Text holds the
// characters typed, including control characters such as '\r' and
// '\b' when the platform reports them as text.
type EditEvent struct {
	Text string
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used, via unicode.ToUpper.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameDeleteBackward Name = "⌫"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
)

// aliases maps readable names to key names.
var aliases = map[string]Name{
	"Left":      NameLeftArrow,
	"Right":     NameRightArrow,
	"Up":        NameUpArrow,
	"Down":      NameDownArrow,
	"Return":    NameReturn,
	"Enter":     NameEnter,
	"Escape":    NameEscape,
	"Backspace": NameDeleteBackward,
	"Tab":       NameTab,
	"Space":     NameSpace,
}

var modNames = map[string]Modifiers{
	"Ctrl":    ModCtrl,
	"Command": ModCommand,
	"Shift":   ModShift,
	"Alt":     ModAlt,
	"Super":   ModSuper,
}

// Parse parses a key description such as "Ctrl-S", "Left" or
// "Shift-Tab" into a key name and its modifiers.
func Parse(s string) (Name, Modifiers, error) {
	parts := strings.Split(s, "-")
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		m, ok := modNames[p]
		if !ok {
			return "", 0, fmt.Errorf("key: unknown modifier %q in %q", p, s)
		}
		mods |= m
	}
	last := parts[len(parts)-1]
	if n, ok := aliases[last]; ok {
		return n, mods, nil
	}
	if len([]rune(last)) != 1 {
		return "", 0, fmt.Errorf("key: unknown key %q in %q", last, s)
	}
	return Name(strings.ToUpper(last)), mods, nil
}

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (EditEvent) ImplementsEvent() {}
func (Event) ImplementsEvent()     {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
