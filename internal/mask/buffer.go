// Package mask holds the full-resolution binary mask and the rasterizer that
// paints preview-space drag segments into it.
package mask

import "image"

// Buffer is a row-major grid of 0/1 cells sized like the source image.
type Buffer struct {
	width  int
	height int
	cells  []uint8
}

// New returns an all-zero buffer of the given size. Non-positive dimensions
// yield an empty buffer.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Size returns the dimensions as an image.Point.
func (b *Buffer) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At reports the cell value, 0 for coordinates outside the buffer.
func (b *Buffer) At(x, y int) uint8 {
	if !b.inside(x, y) {
		return 0
	}
	return b.cells[y*b.width+x]
}

// Set marks a single cell. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int) {
	if b.inside(x, y) {
		b.cells[y*b.width+x] = 1
	}
}

// fill marks every cell of r, which must already lie within the buffer.
func (b *Buffer) fill(r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 1
		}
	}
}

// Clear resets every cell to 0.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Count returns the number of painted cells.
func (b *Buffer) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Gray converts the buffer into a grayscale image with painted cells at 255.
func (b *Buffer) Gray() *image.Gray {
	img := image.NewGray(b.Bounds())
	for i, c := range b.cells {
		img.Pix[i] = c * 255
	}
	return img
}

// Alpha converts the buffer into an alpha mask where painted cells carry
// the given opacity and the rest are transparent.
func (b *Buffer) Alpha(a uint8) *image.Alpha {
	img := image.NewAlpha(b.Bounds())
	for i, c := range b.cells {
		if c != 0 {
			img.Pix[i] = a
		}
	}
	return img
}
