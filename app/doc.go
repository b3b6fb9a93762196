// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects an editor to a source of events and a renderer.

A Context holds the state of one editing session: the edited file,
its editor and the surrounding chrome. Events are delivered to it
through its Event method, and its contents are recorded with Frame.

For example:

	ctx, err := app.NewContext(app.DefaultConfig(), "notes.txt")
	if err != nil {
		log.Fatal(err)
	}
	for e := range events {
		if err := ctx.Event(e); errors.Is(err, app.ErrClosed) {
			break
		}
		ops.Reset()
		ctx.Frame(ops)
		// Render ops.
	}

There is no global state; any number of Contexts may exist at once.

# Configuration

Config is usually loaded from a TOML file with LoadConfig:

	[window]
	width = 800
	height = 600
	scale = 1.0

	[font]
	path = ""
	size = 16

	[caret]
	margin = 8
	width = 8

	[colors]
	background = "#3f4e4f"
	text = "#dcd7c9"
	caret = "#a27b5c"
	chrome = "#2c3639"

	[log]
	level = "info"

Sizes are in device independent units and scaled by the window scale.
*/
package app
