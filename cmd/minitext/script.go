// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"minitext.org/app"
	"minitext.org/f32"
	"minitext.org/io/event"
	"minitext.org/io/key"
	"minitext.org/io/pointer"
	"minitext.org/io/system"
)

// runner feeds commands to a Context.
type runner struct {
	ctx *app.Context
	// events receives the parsed events, usually ctx.
	events event.Handler
	out    io.Writer
	log    *slog.Logger
}

func newRunner(ctx *app.Context, out io.Writer, log *slog.Logger) *runner {
	return &runner{ctx: ctx, events: ctx, out: out, log: log}
}

func isClosed(err error) bool {
	return errors.Is(err, app.ErrClosed)
}

// run executes every line of src until the input ends or a command
// ends the session.
func (r *runner) run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for n := 1; sc.Scan(); n++ {
		switch err := r.exec(sc.Text()); {
		case isClosed(err):
			return nil
		case err != nil:
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// exec executes a single command. Commands that fail to apply are
// logged; app.ErrClosed is returned when the session ends.
func (r *runner) exec(line string) error {
	if strings.TrimSpace(line) == "print" {
		_, err := fmt.Fprintln(r.out, r.ctx.Editor().Document().String())
		return err
	}
	events, err := parseLine(line)
	if err != nil {
		return err
	}
	for _, e := range events {
		err := r.events.Event(e)
		if isClosed(err) {
			return err
		}
		if err != nil {
			r.log.Warn("command failed", "command", line, "err", err)
		}
	}
	return nil
}

// parseLine converts a command to the events it stands for. Blank
// lines and lines starting with # result in no events.
func parseLine(line string) ([]event.Event, error) {
	line = strings.TrimLeft(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	name, arg, _ := strings.Cut(line, " ")
	switch name {
	case "type":
		if arg == "" {
			return nil, errors.New("type: missing text")
		}
		if strings.HasPrefix(arg, `"`) {
			s, err := strconv.Unquote(strings.TrimSpace(arg))
			if err != nil {
				return nil, fmt.Errorf("type: %w", err)
			}
			arg = s
		}
		return []event.Event{key.EditEvent{Text: arg}}, nil
	case "key":
		n, mods, err := key.Parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, err
		}
		return []event.Event{key.Event{Name: n, Modifiers: mods}}, nil
	case "click":
		v, err := parseNumbers(name, arg, 2, 2)
		if err != nil {
			return nil, err
		}
		pos := f32.Pt(float32(v[0]), float32(v[1]))
		return []event.Event{
			pointer.Event{Kind: pointer.Press, Position: pos},
			pointer.Event{Kind: pointer.Release, Position: pos},
		}, nil
	case "scroll":
		unit, amount, _ := strings.Cut(strings.TrimSpace(arg), " ")
		e := pointer.Event{Kind: pointer.Scroll}
		switch unit {
		case "lines":
			e.ScrollUnit = pointer.Lines
		case "px":
			e.ScrollUnit = pointer.Pixels
		default:
			return nil, fmt.Errorf("scroll: unknown unit %q", unit)
		}
		v, err := parseNumbers(name, amount, 1, 1)
		if err != nil {
			return nil, err
		}
		e.Scroll = f32.Pt(0, float32(v[0]))
		return []event.Event{e}, nil
	case "resize":
		v, err := parseNumbers(name, arg, 2, 3)
		if err != nil {
			return nil, err
		}
		e := system.ResizeEvent{Size: image.Pt(int(v[0]), int(v[1]))}
		if len(v) == 3 {
			e.Scale = float32(v[2])
		}
		return []event.Event{e}, nil
	case "save":
		return []event.Event{key.Event{Name: "S", Modifiers: key.ModCtrl}}, nil
	case "quit":
		return []event.Event{key.Event{Name: key.NameEscape}}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}

// parseNumbers parses between lo and hi space separated numbers.
func parseNumbers(cmd, arg string, lo, hi int) ([]float64, error) {
	fields := strings.Fields(arg)
	if len(fields) < lo || len(fields) > hi {
		return nil, fmt.Errorf("%s: got %d arguments, want %d to %d", cmd, len(fields), lo, hi)
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd, err)
		}
		v[i] = n
	}
	return v, nil
}
