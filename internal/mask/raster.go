package mask

import (
	"image"
	"math"
)

// Point is an integer position in preview coordinates.
type Point struct {
	X, Y int
}

// Segment is one pointer move while the button is held.
type Segment struct {
	Start Point
	End   Point
}

// Scale maps preview coordinates onto original-image coordinates.
type Scale struct {
	X, Y float64
}

// ScaleBetween returns the per-axis factors original/preview.
func ScaleBetween(original, preview image.Point) Scale {
	s := Scale{X: 1, Y: 1}
	if preview.X > 0 {
		s.X = float64(original.X) / float64(preview.X)
	}
	if preview.Y > 0 {
		s.Y = float64(original.Y) / float64(preview.Y)
	}
	return s
}

// HalfBrush is the distance the stroke extends past the segment on each side.
func HalfBrush(width int) int {
	if width < 0 {
		return 0
	}
	return width / 2
}

// PreviewRect returns the preview cells covered by seg, expanded by half the
// brush width on every side.
func PreviewRect(seg Segment, brushWidth int) image.Rectangle {
	h := HalfBrush(brushWidth)
	x0, x1 := minMax(seg.Start.X, seg.End.X)
	y0, y1 := minMax(seg.Start.Y, seg.End.Y)
	return image.Rectangle{
		Min: image.Pt(x0-h, y0-h),
		Max: image.Pt(x1+h+1, y1+h+1),
	}
}

// scaleRect maps the corners of a preview rectangle onto original
// coordinates. The last covered preview cell is scaled as a corner, so the
// result is inclusive of that scaled cell and never empty.
func scaleRect(r image.Rectangle, s Scale) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(scaleCoord(r.Min.X, s.X), scaleCoord(r.Min.Y, s.Y)),
		Max: image.Pt(scaleCoord(r.Max.X-1, s.X)+1, scaleCoord(r.Max.Y-1, s.Y)+1),
	}
}

func scaleCoord(v int, f float64) int {
	return int(math.Floor(float64(v) * f))
}

// PaintSegment marks the brush-expanded bounding rectangle of seg in buf.
// The rectangle is scaled into original coordinates and clipped to the
// buffer; cells outside are skipped. It returns the rectangle actually
// painted, which is empty when the stroke lies entirely off the image.
func PaintSegment(buf *Buffer, seg Segment, brushWidth int, scale Scale) image.Rectangle {
	r := scaleRect(PreviewRect(seg, brushWidth), scale).Intersect(buf.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}
	buf.fill(r)
	return r
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
