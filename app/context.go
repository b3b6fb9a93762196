// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/math/fixed"

	"minitext.org/font/gofont"
	"minitext.org/font/opentype"
	"minitext.org/gesture"
	"minitext.org/io/event"
	"minitext.org/io/key"
	"minitext.org/io/pointer"
	"minitext.org/io/system"
	"minitext.org/layout"
	"minitext.org/op"
	"minitext.org/text"
	"minitext.org/unit"
	"minitext.org/widget"
)

// ErrClosed is returned by Context.Event once the session has
// ended.
var ErrClosed = errors.New("app: context closed")

// Size of the save button in the top right corner.
const (
	saveWidth  unit.Dp = 100
	saveHeight unit.Dp = 40
)

// ctrlS is the character some platforms deliver for Ctrl+S.
const ctrlS = '\x13'

var _ event.Handler = (*Context)(nil)

// Option configures a Context.
type Option func(*Context)

// Logger sets the logger of a Context. The default is
// slog.Default.
func Logger(l *slog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// Context is the state of an editing session of a single file.
type Context struct {
	cfg    Config
	path   string
	log    *slog.Logger
	metric unit.Metric
	// size of the window in pixels.
	size   image.Point
	face   *opentype.Face
	colors palette
	editor *widget.Editor
	save   widget.Button
	click  gesture.Click
	scroll gesture.Scroll
	closed bool
}

// NewContext opens the file at path for editing. A missing file
// results in an empty document that is created on the first save,
// as does a file that is not valid UTF-8.
func NewContext(cfg Config, path string, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	c := &Context{
		cfg:    cfg,
		path:   path,
		log:    slog.Default(),
		metric: cfg.Metric(),
		scroll: gesture.Scroll{Axis: gesture.Vertical},
	}
	for _, o := range opts {
		o(c)
	}
	colors, err := cfg.Colors.palette()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	c.colors = colors
	c.face, err = loadFace(cfg.Font.Path)
	if err != nil {
		return nil, err
	}
	lines, err := widget.LoadFile(path)
	var rerr *widget.FileReadError
	switch {
	case errors.As(err, &rerr):
		c.log.Warn("starting with an empty document", "path", path, "err", err)
	case err != nil:
		return nil, fmt.Errorf("app: %w", err)
	}
	c.size = image.Pt(c.metric.Dp(cfg.Window.Width), c.metric.Dp(cfg.Window.Height))
	c.editor = widget.NewEditor(widget.EditorOptions{
		Shaper:     text.NewCache(c.face),
		TextSize:   c.TextSize(),
		Size:       c.size,
		Margin:     c.margin(),
		CaretWidth: c.metric.Dp(cfg.Caret.Width),
	}, lines)
	c.editor.TextColor = colors.text
	c.editor.CaretColor = colors.caret
	c.save = widget.Button{Label: "Save", LabelColor: colors.text}
	c.save.Color = colors.chrome
	c.layoutChrome()
	c.log.Info("opened", "path", path, "lines", c.editor.Document().Len())
	return c, nil
}

func loadFace(path string) (*opentype.Face, error) {
	if path == "" {
		return gofont.Mono(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	face, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", path, err)
	}
	return face, nil
}

// Editor returns the editor of the session.
func (c *Context) Editor() *widget.Editor {
	return c.editor
}

// Face returns the font face text is shaped with.
func (c *Context) Face() *opentype.Face {
	return c.face
}

// TextSize returns the text size in pixels.
func (c *Context) TextSize() fixed.Int26_6 {
	return c.metric.SpFixed(c.cfg.Font.Size)
}

// Size returns the window size in pixels.
func (c *Context) Size() image.Point {
	return c.size
}

// Path returns the path of the edited file.
func (c *Context) Path() string {
	return c.path
}

// margin is the width at the end of every row not covered by text:
// the caret margin and the save button.
func (c *Context) margin() int {
	return c.metric.Dp(c.cfg.Caret.Margin) + c.metric.Dp(saveWidth)
}

func (c *Context) layoutChrome() {
	w, h := c.metric.Dp(saveWidth), c.metric.Dp(saveHeight)
	c.save.Pos = image.Pt(c.size.X-w, 0)
	c.save.Size = image.Pt(w, h)
}

// Event processes an event. Editing errors are returned but leave the
// session usable; ErrClosed is returned for the Escape key and
// system.DestroyEvent, and for every event after them.
func (c *Context) Event(e event.Event) error {
	if c.closed {
		return ErrClosed
	}
	switch e := e.(type) {
	case key.Event:
		return c.key(e)
	case key.EditEvent:
		return c.edit(e.Text)
	case pointer.Event:
		return c.pointer(e)
	case system.ResizeEvent:
		c.resize(e)
	case system.DestroyEvent:
		c.closed = true
		return ErrClosed
	}
	return nil
}

func (c *Context) key(e key.Event) error {
	if e.State != key.Press {
		return nil
	}
	if e.Name == "S" && (e.Modifiers.Contain(key.ModCtrl) || e.Modifiers.Contain(key.ModCommand)) {
		return c.Save()
	}
	var cmd widget.Command
	switch e.Name {
	case key.NameEscape:
		c.closed = true
		return ErrClosed
	case key.NameLeftArrow:
		cmd = widget.Move{Dir: widget.Left}
	case key.NameRightArrow:
		cmd = widget.Move{Dir: widget.Right}
	case key.NameUpArrow:
		cmd = widget.Move{Dir: widget.Up}
	case key.NameDownArrow:
		cmd = widget.Move{Dir: widget.Down}
	case key.NameReturn, key.NameEnter:
		cmd = widget.Newline{}
	case key.NameDeleteBackward:
		cmd = widget.Backspace{}
	case key.NameTab:
		cmd = widget.Tab{}
	default:
		return nil
	}
	return c.apply(cmd)
}

func (c *Context) edit(text string) error {
	var errs []error
	for _, r := range text {
		if r == ctrlS {
			errs = append(errs, c.Save())
			continue
		}
		if cmd := widget.CommandForRune(r); cmd != nil {
			errs = append(errs, c.apply(cmd))
		}
	}
	return errors.Join(errs...)
}

func (c *Context) apply(cmd widget.Command) error {
	if err := c.editor.Apply(cmd); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

func (c *Context) pointer(e pointer.Event) error {
	if e.Kind == pointer.Scroll {
		if d := c.scroll.Update(e, c.editor.Document().LineHeight()); d != 0 {
			c.editor.ScrollBy(d)
			c.log.Debug("scroll", "offset", c.editor.Scroll())
		}
		return nil
	}
	ce, ok := c.click.Update(e, c.save.Clicked(e.Position.Round()))
	if ok && ce.Type == gesture.TypeClick {
		return c.Save()
	}
	return nil
}

func (c *Context) resize(e system.ResizeEvent) {
	if e.Scale > 0 && e.Scale != c.metric.PxPerDp {
		c.metric = unit.Scaled(e.Scale)
		c.editor.Document().SetCaretWidth(c.metric.Dp(c.cfg.Caret.Width))
		c.editor.SetMargin(c.margin())
		c.editor.SetTextSize(c.TextSize())
	}
	if e.Size.X > 0 && e.Size.Y > 0 {
		c.size = e.Size
		c.editor.Resize(e.Size)
	}
	c.layoutChrome()
	c.log.Debug("resize", "size", c.size, "scale", c.metric.PxPerDp)
}

// Save writes the document to the edited file. Failures are logged
// and returned as *widget.FileWriteError.
func (c *Context) Save() error {
	lines := c.editor.Document().Lines()
	if err := widget.SaveFile(c.path, lines); err != nil {
		c.log.Error("save failed", "err", err)
		return err
	}
	c.log.Info("saved", "path", c.path, "lines", len(lines))
	return nil
}

// Frame records the window contents: the background, the visible
// text, the carets and the chrome.
func (c *Context) Frame(o *op.Ops) {
	v := layout.Viewport{Size: c.size}
	widget.Rect{Size: c.size, Color: c.colors.background}.Add(o, v)
	c.editor.Layout(o)
	c.save.Layout(o, v)
}
