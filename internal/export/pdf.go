package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"ImageMasker/internal/imageio"
	"ImageMasker/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	sheetMargin         = 10.0  // mm
	sheetImageMaxHeight = 105.0 // mm
)

// WriteSheet renders a one-page A4 summary of the session: source details,
// the preview with the painted region tinted, and the exported mask.
func WriteSheet(w io.Writer, s *state.Session, brushWidth int, tint color.NRGBA) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Mask sheet: "+s.Name, true)
	p.SetCreator("ImageMasker", true)
	p.SetMargins(sheetMargin, sheetMargin, sheetMargin)
	p.AddPage()

	size := s.OriginalSize()
	p.SetFont("Helvetica", "B", 16)
	p.Cell(0, 10, "Mask sheet: "+filepath.Base(s.Name))
	p.Ln(10)
	p.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Original size: %d x %d px", size.X, size.Y),
		fmt.Sprintf("Preview scale: %.3f x %.3f", s.Scale.X, s.Scale.Y),
		fmt.Sprintf("Brush width: %d preview px", brushWidth),
		fmt.Sprintf("Painted pixels: %d of %d", s.Mask.Count(), size.X*size.Y),
		fmt.Sprintf("Session: %s", s.ID),
	} {
		p.Cell(0, 5, line)
		p.Ln(5)
	}
	p.Ln(3)

	if err := placeImage(p, "overlay", imageio.Overlay(s.Preview, s.Mask, tint)); err != nil {
		return err
	}
	p.Ln(4)
	if err := placeImage(p, "mask", MaskImage(s.Mask, size)); err != nil {
		return err
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}

// placeImage embeds img at the current line, fitted into the page width and
// sheetImageMaxHeight while keeping its aspect ratio.
func placeImage(p *gofpdf.Fpdf, name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s image: %w", name, err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(name, opts, &buf)
	if err := p.Error(); err != nil {
		return fmt.Errorf("register %s image: %w", name, err)
	}

	pageW, _ := p.GetPageSize()
	maxW := pageW - 2*sheetMargin

	b := img.Bounds()
	w := maxW
	h := w * float64(b.Dy()) / float64(b.Dx())
	if h > sheetImageMaxHeight {
		h = sheetImageMaxHeight
		w = h * float64(b.Dx()) / float64(b.Dy())
	}
	p.ImageOptions(name, sheetMargin, p.GetY(), w, h, true, opts, 0, "")
	return nil
}
