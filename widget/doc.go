// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the editable document of a text editor.
//
// A Document is an ordered list of logical Lines. Every Line carries
// its wrapped layout, recomputed whenever its text changes. Cursors
// address the Document by logical (column, line) Position; Locate
// translates a Position into the pixel placement of a caret. The
// Editor ties a Document, its cursors and the viewport together and
// records each frame into an op.Ops list.
package widget
