package imageio

import (
	"image"
	"image/color"
	"image/draw"

	"ImageMasker/internal/mask"

	xdraw "golang.org/x/image/draw"
)

// DefaultPreviewHeight is the on-screen height of every loaded image.
const DefaultPreviewHeight = 600

// PreviewSize keeps the aspect ratio of original at the given height. The
// width is truncated and never drops below one pixel.
func PreviewSize(original image.Point, height int) image.Point {
	if height <= 0 {
		height = DefaultPreviewHeight
	}
	if original.Y <= 0 {
		return image.Pt(1, height)
	}
	w := int(float64(original.X) * (float64(height) / float64(original.Y)))
	if w < 1 {
		w = 1
	}
	return image.Pt(w, height)
}

// Preview resamples src to PreviewSize with a Catmull-Rom filter.
func Preview(src image.Image, height int) *image.RGBA {
	b := src.Bounds()
	size := PreviewSize(b.Size(), height)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Overlay tints the painted cells of buf on top of a copy of preview,
// flattened onto white. The mask is resampled to the preview size with
// nearest-neighbour sampling so it stays binary.
func Overlay(preview image.Image, buf *mask.Buffer, tint color.NRGBA) *image.RGBA {
	pb := preview.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: pb.Size()})
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), preview, pb.Min, draw.Over)

	alpha := image.NewAlpha(dst.Bounds())
	src := buf.Alpha(tint.A)
	xdraw.NearestNeighbor.Scale(alpha, alpha.Bounds(), src, src.Bounds(), draw.Src, nil)

	solid := &image.Uniform{C: color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 255}}
	draw.DrawMask(dst, dst.Bounds(), solid, image.Point{}, alpha, image.Point{}, draw.Over)
	return dst
}
