// Package export writes masks to disk: the grayscale PNG mask itself and a
// PDF sheet summarising a masking session.
package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"

	"ImageMasker/internal/mask"

	xdraw "golang.org/x/image/draw"
)

// MaskImage multiplies every cell by 255 and resizes the result to size.
// The buffer normally already has the original dimensions, in which case
// the resize is skipped.
func MaskImage(buf *mask.Buffer, size image.Point) *image.Gray {
	g := buf.Gray()
	if g.Bounds().Size() == size {
		return g
	}
	dst := image.NewGray(image.Rectangle{Max: size})
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), g, g.Bounds(), draw.Src, nil)
	return dst
}

// WriteMask encodes the mask as a single-channel PNG of the given size.
func WriteMask(w io.Writer, buf *mask.Buffer, size image.Point) error {
	if err := png.Encode(w, MaskImage(buf, size)); err != nil {
		return fmt.Errorf("encode mask: %w", err)
	}
	return nil
}

// SaveMask writes the PNG mask to path, replacing any existing file.
func SaveMask(path string, buf *mask.Buffer, size image.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mask file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close mask file: %w", cerr)
		}
	}()
	if err := WriteMask(f, buf, size); err != nil {
		return err
	}
	log.Printf("[EXPORT] Mask saved: %s (%dx%d)", path, size.X, size.Y)
	return nil
}
