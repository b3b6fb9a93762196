// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"minitext.org/internal/f32color"
	"minitext.org/unit"
)

// Config is the configuration of a Context.
type Config struct {
	Window WindowConfig `toml:"window"`
	Font   FontConfig   `toml:"font"`
	Caret  CaretConfig  `toml:"caret"`
	Colors ColorConfig  `toml:"colors"`
	Log    LogConfig    `toml:"log"`
}

// WindowConfig is the initial window geometry.
type WindowConfig struct {
	Width  unit.Dp `toml:"width"`
	Height unit.Dp `toml:"height"`
	// Scale is the number of pixels per Dp.
	Scale float32 `toml:"scale"`
}

type FontConfig struct {
	// Path of an OpenType font file. The Go Mono font is used if
	// empty.
	Path string  `toml:"path"`
	Size unit.Sp `toml:"size"`
}

type CaretConfig struct {
	// Margin is reserved at the end of every row for the caret.
	Margin unit.Dp `toml:"margin"`
	// Width of a caret placed after the end of a line.
	Width unit.Dp `toml:"width"`
}

// ColorConfig holds colors as SVG 1.1 color keywords
// or in #rgb or #rrggbb notation.
type ColorConfig struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Caret      string `toml:"caret"`
	Chrome     string `toml:"chrome"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used in the absence of a
// configuration file.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Scale: 1},
		Font:   FontConfig{Size: 16},
		Caret:  CaretConfig{Margin: 8, Width: 8},
		Colors: ColorConfig{
			Background: "#3f4e4f",
			Text:       "#dcd7c9",
			Caret:      "#a27b5c",
			Chrome:     "#2c3639",
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads the TOML file at path over the defaults. A missing
// file results in the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("app: %w", err)
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("app: %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("app: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("app: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting of c.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %vx%v is not positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale %v is not positive", c.Window.Scale))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size %v is not positive", c.Font.Size))
	}
	if c.Caret.Margin < 0 || c.Caret.Width <= 0 {
		errs = append(errs, fmt.Errorf("caret margin %v or width %v out of range", c.Caret.Margin, c.Caret.Width))
	}
	for _, col := range []string{c.Colors.Background, c.Colors.Text, c.Colors.Caret, c.Colors.Chrome} {
		if _, err := f32color.Parse(col); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := c.Log.level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Metric returns the unit conversion of the configured scale.
func (c Config) Metric() unit.Metric {
	return unit.Scaled(c.Window.Scale)
}

// SlogLevel returns the configured log level.
func (c LogConfig) SlogLevel() slog.Level {
	l, _ := c.level()
	return l
}

func (c LogConfig) level() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", c.Level)
	}
}

// palette is the parsed form of a ColorConfig.
type palette struct {
	background, text, caret, chrome f32color.RGBA
}

func (c ColorConfig) palette() (palette, error) {
	var p palette
	for _, e := range []struct {
		s   string
		dst *f32color.RGBA
	}{
		{c.Background, &p.background},
		{c.Text, &p.text},
		{c.Caret, &p.caret},
		{c.Chrome, &p.chrome},
	} {
		col, err := f32color.Parse(e.s)
		if err != nil {
			return palette{}, err
		}
		*e.dst = f32color.LinearFromSRGB(col)
	}
	return p, nil
}
