package ui

import (
	"image"
	"image/color"

	"ImageMasker/internal/mask"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// MaskCanvas shows the preview image and the strokes painted over it. It
// turns primary-button press, drag and release into preview coordinates and
// leaves the mask itself to its callbacks. Strokes are rasterized into a
// single overlay image the size of the preview.
type MaskCanvas struct {
	widget.BaseWidget

	preview     *canvas.Image
	overlay     *canvas.Image
	strokeImg   *image.NRGBA
	stroker     *rasterx.Dasher
	size        fyne.Size
	strokes     int
	strokeColor color.Color
	pressed     bool

	OnPress   func(p mask.Point)
	OnDrag    func(p mask.Point)
	OnRelease func()
}

var _ fyne.Widget = (*MaskCanvas)(nil)
var _ fyne.Draggable = (*MaskCanvas)(nil)
var _ desktop.Mouseable = (*MaskCanvas)(nil)

func NewMaskCanvas(strokeColor color.Color) *MaskCanvas {
	c := &MaskCanvas{
		preview:     canvas.NewImageFromImage(nil),
		overlay:     canvas.NewImageFromImage(nil),
		strokeColor: strokeColor,
	}
	c.preview.FillMode = canvas.ImageFillStretch
	c.overlay.FillMode = canvas.ImageFillStretch
	c.ExtendBaseWidget(c)
	return c
}

// SetPreview replaces the displayed image and drops every stroke drawn on
// the previous one.
func (c *MaskCanvas) SetPreview(img *image.RGBA) {
	b := img.Bounds()
	c.preview.Image = img
	c.strokeImg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	c.overlay.Image = c.strokeImg
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.strokeImg, c.strokeImg.Bounds())
	c.stroker = rasterx.NewDasher(b.Dx(), b.Dy(), scanner)

	c.size = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	c.strokes = 0
	c.pressed = false
	c.preview.Refresh()
	c.overlay.Refresh()
	c.Refresh()
}

// HasImage reports whether a preview has been set.
func (c *MaskCanvas) HasImage() bool {
	return c.preview.Image != nil
}

// StrokeCount returns the number of stroke segments drawn on the overlay.
func (c *MaskCanvas) StrokeCount() int {
	return c.strokes
}

// AddStroke draws seg onto the overlay as a round-capped line of the brush
// width, the way the pointer is shown while painting.
func (c *MaskCanvas) AddStroke(seg mask.Segment, brushWidth int) {
	if c.stroker == nil {
		return
	}
	width := float64(brushWidth)
	x0, y0 := float64(seg.Start.X), float64(seg.Start.Y)
	x1, y1 := float64(seg.End.X), float64(seg.End.Y)

	d := c.stroker
	if seg.Start != seg.End {
		d.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
		d.Start(rasterx.ToFixedP(x0, y0))
		d.Line(rasterx.ToFixedP(x1, y1))
		d.Stop(false)
		d.SetColor(c.strokeColor)
		d.Draw()
		d.Clear()
	}

	// A zero-length segment still shows a dot of the brush width.
	f := &d.Filler
	rasterx.AddCircle(x1, y1, width/2, f)
	f.SetColor(c.strokeColor)
	f.Draw()
	f.Clear()

	c.strokes++
	c.overlay.Refresh()
}

func toPoint(pos fyne.Position) mask.Point {
	return mask.Point{X: int(pos.X), Y: int(pos.Y)}
}

func (c *MaskCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !c.HasImage() {
		return
	}
	c.pressed = true
	if c.OnPress != nil {
		c.OnPress(toPoint(e.Position))
	}
}

func (c *MaskCanvas) Dragged(e *fyne.DragEvent) {
	if !c.pressed {
		return
	}
	if c.OnDrag != nil {
		c.OnDrag(toPoint(e.Position))
	}
}

func (c *MaskCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		c.release()
	}
}

func (c *MaskCanvas) DragEnd() {
	c.release()
}

func (c *MaskCanvas) release() {
	if !c.pressed {
		return
	}
	c.pressed = false
	if c.OnRelease != nil {
		c.OnRelease()
	}
}

func (c *MaskCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &maskCanvasRenderer{canvas: c}
}

type maskCanvasRenderer struct {
	canvas *MaskCanvas
}

func (r *maskCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.preview, r.canvas.overlay}
}

func (r *maskCanvasRenderer) Layout(fyne.Size) {
	for _, img := range []*canvas.Image{r.canvas.preview, r.canvas.overlay} {
		img.Move(fyne.NewPos(0, 0))
		img.Resize(r.canvas.size)
	}
}

func (r *maskCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.size
}

func (r *maskCanvasRenderer) Refresh() {
	r.Layout(r.canvas.Size())
	canvas.Refresh(r.canvas)
}

func (r *maskCanvasRenderer) Destroy() {}
