// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"unicode"
)

// Command is a movement or edit applied to a Cursor. The set of
// commands is closed: Move, Insert, Newline, Backspace and Tab.
type Command interface {
	ImplementsCommand()
}

// Direction of a Move.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Move moves a cursor one rune or one line in a direction.
type Move struct {
	Dir Direction
}

// Insert inserts a rune before the cursor. Control characters are
// ignored.
type Insert struct {
	Rune rune
}

// Newline splits the line at the cursor.
type Newline struct{}

// Backspace deletes the rune before the cursor, joining lines at
// the start of a line.
type Backspace struct{}

// Tab is reserved for indentation and currently has no effect.
type Tab struct{}

func (Move) ImplementsCommand()      {}
func (Insert) ImplementsCommand()    {}
func (Newline) ImplementsCommand()   {}
func (Backspace) ImplementsCommand() {}
func (Tab) ImplementsCommand()       {}

// CommandForRune maps a typed character to its command. It returns
// nil for control characters without an editing meaning.
func CommandForRune(r rune) Command {
	switch r {
	case '\r', '\n':
		return Newline{}
	case '\b', 0x7f:
		return Backspace{}
	case '\t':
		return Tab{}
	}
	if unicode.IsControl(r) {
		return nil
	}
	return Insert{Rune: r}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		panic("unknown Direction")
	}
}
