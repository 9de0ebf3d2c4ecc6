package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultBrushWidth is the width used until the user confirms another.
const DefaultBrushWidth = 5

// ErrInvalidBrush is returned for brush input that is not a positive integer.
var ErrInvalidBrush = errors.New("brush width must be a positive integer")

// Brush is the process-wide stroke width. It outlives sessions.
type Brush struct {
	width int
}

func NewBrush(width int) *Brush {
	if width < 1 {
		width = DefaultBrushWidth
	}
	return &Brush{width: width}
}

func (b *Brush) Width() int { return b.width }

// Set parses text as the new width. On error the previous width is kept.
func (b *Brush) Set(text string) error {
	w, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBrush, text)
	}
	if w < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBrush, w)
	}
	b.width = w
	return nil
}
