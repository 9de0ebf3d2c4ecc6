package state

import (
	"image"
	"log"
	"time"

	"ImageMasker/internal/imageio"
	"ImageMasker/internal/mask"

	"github.com/google/uuid"
)

// Session is everything tied to one loaded image. A new load replaces the
// whole session, discarding the previous preview and mask.
type Session struct {
	ID       string
	Name     string
	Source   image.Image
	Preview  *image.RGBA
	Mask     *mask.Buffer
	Scale    mask.Scale
	LoadedAt time.Time

	drawing  bool
	last     mask.Point
	segments int
}

// NewSession derives the preview and an all-zero mask sized like src.
func NewSession(name string, src image.Image, previewHeight int) *Session {
	original := src.Bounds().Size()
	preview := imageio.Preview(src, previewHeight)
	s := &Session{
		ID:       uuid.NewString(),
		Name:     name,
		Source:   src,
		Preview:  preview,
		Mask:     mask.New(original.X, original.Y),
		Scale:    mask.ScaleBetween(original, preview.Bounds().Size()),
		LoadedAt: time.Now(),
	}
	log.Printf("[MASK] Session %s: %s %dx%d, preview %dx%d, scale %.3fx%.3f",
		s.ID, name, original.X, original.Y, preview.Bounds().Dx(), preview.Bounds().Dy(), s.Scale.X, s.Scale.Y)
	return s
}

// OriginalSize is the size of the source image and of the mask.
func (s *Session) OriginalSize() image.Point {
	return s.Source.Bounds().Size()
}

// PreviewSize is the size of the on-screen image.
func (s *Session) PreviewSize() image.Point {
	return s.Preview.Bounds().Size()
}

// Drawing reports whether the pointer button is currently held.
func (s *Session) Drawing() bool { return s.drawing }

// Segments returns how many drag segments have been painted.
func (s *Session) Segments() int { return s.segments }

// BeginStroke records the press position. Nothing is painted until the
// pointer moves.
func (s *Session) BeginStroke(p mask.Point) {
	s.drawing = true
	s.last = p
}

// ContinueStroke paints the segment from the previous pointer position to p
// and returns it with the mask rectangle that was painted. Moves outside a
// stroke are ignored and report false.
func (s *Session) ContinueStroke(p mask.Point, brushWidth int) (mask.Segment, image.Rectangle, bool) {
	if !s.drawing {
		return mask.Segment{}, image.Rectangle{}, false
	}
	seg := mask.Segment{Start: s.last, End: p}
	r := mask.PaintSegment(s.Mask, seg, brushWidth, s.Scale)
	s.last = p
	s.segments++
	return seg, r, true
}

// EndStroke releases the pointer.
func (s *Session) EndStroke() {
	s.drawing = false
}
