package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"ImageMasker/internal/config"
	"ImageMasker/internal/mask"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	io.Reader
	uri    fyne.URI
	closed bool
}

func (r *fakeReader) Close() error  { r.closed = true; return nil }
func (r *fakeReader) URI() fyne.URI { return r.uri }

type fakeWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (w *fakeWriter) Close() error  { w.closed = true; return nil }
func (w *fakeWriter) URI() fyne.URI { return w.uri }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestMasker(t *testing.T) (*Masker, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	m := NewMasker(config.Default(), w)
	w.SetContent(m.Content())
	return m, w
}

func press(c *MaskCanvas, x, y float32) {
	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func drag(c *MaskCanvas, x, y float32) {
	c.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func release(c *MaskCanvas) {
	c.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	c.DragEnd()
}

func TestExportDisabledUntilLoad(t *testing.T) {
	m, _ := newTestMasker(t)
	assert.True(t, m.saveButton.Disabled())
	assert.True(t, m.sheetButton.Disabled())
	assert.ErrorIs(t, m.SaveMask(io.Discard), ErrNoImage)
	assert.ErrorIs(t, m.ExportSheet(io.Discard), ErrNoImage)

	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 1200, 600)), "wide.png"))
	assert.False(t, m.saveButton.Disabled())
	assert.False(t, m.sheetButton.Disabled())
	assert.Contains(t, m.Status(), "1200x600")
}

func TestDragPaintsMask(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 1200, 600)), "wide.png"))

	press(m.Canvas, 100, 100)
	drag(m.Canvas, 100, 100)
	release(m.Canvas)

	s := m.Session()
	assert.Equal(t, 25, s.Mask.Count())
	assert.EqualValues(t, 1, s.Mask.At(98, 98))
	assert.EqualValues(t, 1, s.Mask.At(102, 102))
	assert.False(t, s.Drawing())
	assert.Equal(t, 1, m.Canvas.StrokeCount())

	// Moves after release paint nothing.
	drag(m.Canvas, 300, 300)
	assert.Equal(t, 25, s.Mask.Count())
}

func TestDragScalesToOriginal(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 800, 1200)), "tall.png"))
	require.Equal(t, image.Pt(400, 600), m.Session().PreviewSize())

	require.True(t, m.ConfirmBrush("1"))
	press(m.Canvas, 10, 10)
	drag(m.Canvas, 10, 10)
	release(m.Canvas)

	assert.Equal(t, 1, m.Session().Mask.Count())
	assert.EqualValues(t, 1, m.Session().Mask.At(20, 20))

	require.True(t, m.ConfirmBrush("3"))
	press(m.Canvas, 100, 100)
	drag(m.Canvas, 100, 100)
	release(m.Canvas)
	assert.EqualValues(t, 1, m.Session().Mask.At(198, 202))
	assert.EqualValues(t, 1, m.Session().Mask.At(202, 198))
	assert.EqualValues(t, 0, m.Session().Mask.At(203, 200))
}

func TestSecondButtonDoesNotPaint(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "sq.png"))

	m.Canvas.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)},
		Button:     desktop.MouseButtonSecondary,
	})
	drag(m.Canvas, 60, 60)
	assert.Zero(t, m.Session().Mask.Count())
}

func TestInvalidBrushKeepsWidth(t *testing.T) {
	m, _ := newTestMasker(t)

	m.brushEntry.SetText("abc")
	test.Tap(m.applyButton)
	assert.Equal(t, 5, m.Brush().Width())
	assert.Contains(t, m.Status(), "Invalid brush width")
	assert.Equal(t, "5", m.brushEntry.Text)

	m.brushEntry.SetText("9")
	test.Tap(m.applyButton)
	assert.Equal(t, 9, m.Brush().Width())
}

func TestBrushSurvivesReload(t *testing.T) {
	m, _ := newTestMasker(t)
	require.True(t, m.ConfirmBrush("11"))
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "a.png"))
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "b.png"))
	assert.Equal(t, 11, m.Brush().Width())
}

func TestReloadDiscardsMaskAndStrokes(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "a.png"))
	first := m.Session()
	press(m.Canvas, 10, 10)
	drag(m.Canvas, 40, 40)
	release(m.Canvas)
	require.NotZero(t, first.Mask.Count())

	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 300, 150)), "b.png"))
	assert.NotSame(t, first, m.Session())
	assert.Zero(t, m.Session().Mask.Count())
	assert.Equal(t, image.Pt(300, 150), m.Session().Mask.Size())
	assert.Zero(t, m.Canvas.StrokeCount())
}

func TestLoadFailureKeepsSession(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "a.png"))
	before := m.Session()

	err := m.LoadImage(strings.NewReader("not an image"), "broken.png")
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.Same(t, before, m.Session())

	err = m.LoadFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	assert.Same(t, before, m.Session())
}

func TestOpenDialogCallback(t *testing.T) {
	m, _ := newTestMasker(t)

	m.onOpenChosen(nil, nil)
	assert.Nil(t, m.Session())

	r := &fakeReader{
		Reader: bytes.NewReader(pngBytes(t, 1200, 600)),
		uri:    storage.NewFileURI("/tmp/source.png"),
	}
	m.onOpenChosen(r, nil)
	require.NotNil(t, m.Session())
	assert.Equal(t, "source.png", m.Session().Name)
	assert.True(t, r.closed)
}

func TestSaveDialogCancelled(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "a.png"))
	status := m.Status()

	m.onSaveChosen(nil, nil)
	m.onSheetChosen(nil, nil)
	assert.Equal(t, status, m.Status())
}

func TestSaveDialogWritesMask(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 1200, 600)), "wide.png"))
	press(m.Canvas, 100, 100)
	drag(m.Canvas, 100, 100)
	release(m.Canvas)

	w := &fakeWriter{uri: storage.NewFileURI("/tmp/mask.png")}
	m.onSaveChosen(w, nil)
	assert.True(t, w.closed)
	assert.Contains(t, m.Status(), "Mask saved")

	img, err := png.Decode(&w.Buffer)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1200, 600), img.Bounds())
	assert.Equal(t, color.Gray{Y: 255}, color.GrayModel.Convert(img.At(100, 100)))
	assert.Equal(t, color.Gray{Y: 0}, color.GrayModel.Convert(img.At(103, 100)))
}

func TestSheetDialogWritesPDF(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 640, 480)), "photo.png"))
	press(m.Canvas, 20, 20)
	drag(m.Canvas, 80, 60)
	release(m.Canvas)

	w := &fakeWriter{uri: storage.NewFileURI("/tmp/sheet.pdf")}
	m.onSheetChosen(w, nil)
	assert.True(t, w.closed)
	assert.True(t, bytes.HasPrefix(w.Bytes(), []byte("%PDF-")))
}

func TestCanvasIgnoresPressWithoutImage(t *testing.T) {
	c := NewMaskCanvas(color.Black)
	pressed := false
	c.OnPress = func(mask.Point) { pressed = true }
	press(c, 5, 5)
	assert.False(t, pressed)
}

func TestStrokesShareOneOverlay(t *testing.T) {
	m, _ := newTestMasker(t)
	require.NoError(t, m.LoadImage(bytes.NewReader(pngBytes(t, 600, 600)), "sq.png"))

	press(m.Canvas, 100, 100)
	for i := 0; i < 50; i++ {
		drag(m.Canvas, float32(100+i*4), 100)
	}
	release(m.Canvas)

	assert.Equal(t, 50, m.Canvas.StrokeCount())
	assert.Len(t, test.WidgetRenderer(m.Canvas).Objects(), 2)
	assert.NotZero(t, m.Canvas.strokeImg.NRGBAAt(150, 100).A)
	assert.Zero(t, m.Canvas.strokeImg.NRGBAAt(150, 300).A)
}
