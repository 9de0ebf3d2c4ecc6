// Package config holds startup settings and their command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strconv"
)

// Config holds the startup settings of the masking tool.
type Config struct {
	PreviewHeight int
	BrushWidth    int
	StrokeColor   color.NRGBA
	WindowWidth   float32
	WindowHeight  float32
	// ImagePath, when set, is loaded before the window is shown.
	ImagePath string
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		PreviewHeight: 600,
		BrushWidth:    5,
		StrokeColor:   color.NRGBA{R: 255, A: 255},
		WindowWidth:   1024,
		WindowHeight:  768,
	}
}

// RegisterFlags binds the command-line flags to c. Values already in c
// become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.PreviewHeight, "preview-height", c.PreviewHeight, "height of the on-screen preview in pixels")
	fs.IntVar(&c.BrushWidth, "brush", c.BrushWidth, "initial brush width in preview pixels")
	fs.StringVar(&c.ImagePath, "image", c.ImagePath, "image to open on startup")
	fs.Func("width", "initial window width", floatSetter(&c.WindowWidth))
	fs.Func("height", "initial window height", floatSetter(&c.WindowHeight))
}

func floatSetter(dst *float32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", s, err)
		}
		*dst = float32(v)
		return nil
	}
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error
	if c.PreviewHeight < 1 {
		errs = append(errs, fmt.Errorf("preview height must be positive, got %d", c.PreviewHeight))
	}
	if c.BrushWidth < 1 {
		errs = append(errs, fmt.Errorf("brush width must be positive, got %d", c.BrushWidth))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %gx%g", c.WindowWidth, c.WindowHeight))
	}
	return errors.Join(errs...)
}
