// SPDX-License-Identifier: Unlicense OR MIT

// Command minitext edits a text file by replaying editing commands
// from a script, standard input or an interactive prompt, and can
// render the final frame to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"minitext.org/app"
	"minitext.org/op"
	"minitext.org/raster"
)

// defaultPath is edited when no file is given.
const defaultPath = "untitled.txt"

var (
	configPath = flag.String("config", "", "TOML configuration `file`.")
	scriptPath = flag.String("script", "", "read commands from `file` instead of standard input.")
	pngPath    = flag.String("png", "", "write the final frame to the PNG `file`.")
)

const mainUsage = `The minitext command edits a text file.

Usage:

	minitext [flags] [file]

The file defaults to untitled.txt. Commands are read from the -script
file, from standard input or, if standard input is a terminal, from
an interactive prompt. One command per line:

	type <text>          type text; a quoted Go string may hold \n
	key <name>           press a key: Left, Right, Up, Down, Return,
	                     Backspace, Tab, Escape or Ctrl-S
	click <x> <y>        click at a window position in pixels
	scroll lines <n>     scroll by text rows
	scroll px <n>        scroll by pixels
	resize <w> <h> [s]   resize the window, optionally with scale s
	save                 save the file
	print                print the document
	quit                 end the session

Flags:

`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "minitext: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	path := flag.Arg(0)
	if path == "" {
		path = defaultPath
	}
	ctx, err := app.NewContext(cfg, path, app.Logger(logger))
	if err != nil {
		return err
	}
	r := newRunner(ctx, os.Stdout, logger)
	switch {
	case *scriptPath != "":
		f, err := os.Open(*scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		err = r.run(f)
		if err != nil {
			return fmt.Errorf("%s: %w", *scriptPath, err)
		}
	case !term.IsTerminal(int(os.Stdin.Fd())):
		if err := r.run(os.Stdin); err != nil {
			return err
		}
	default:
		if err := interactive(r); err != nil {
			return err
		}
	}
	if *pngPath != "" {
		return writePNG(ctx, *pngPath)
	}
	return nil
}

// interactive reads commands from a terminal prompt until the session
// ends or the input is closed.
func interactive(r *runner) error {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "> ")
	r.out = t
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch err := r.exec(line); {
		case isClosed(err):
			return nil
		case err != nil:
			fmt.Fprintf(t, "%v\n", err)
		}
	}
}

// writePNG renders the current frame of ctx to path.
func writePNG(ctx *app.Context, path string) error {
	var ops op.Ops
	ctx.Frame(&ops)
	img := image.NewRGBA(image.Rectangle{Max: ctx.Size()})
	if err := raster.New(ctx.Face()).Frame(&ops, img, ctx.TextSize()); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
