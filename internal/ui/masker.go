package ui

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"ImageMasker/internal/config"
	"ImageMasker/internal/export"
	"ImageMasker/internal/imageio"
	"ImageMasker/internal/mask"
	"ImageMasker/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ErrNoImage is returned by operations that need a loaded image.
var ErrNoImage = errors.New("no image loaded")

// Masker connects the window's widgets to the current session. All of its
// methods run on the fyne event goroutine.
type Masker struct {
	cfg     config.Config
	brush   *state.Brush
	session *state.Session
	window  fyne.Window

	Canvas      *MaskCanvas
	status      *widget.Label
	brushEntry  *widget.Entry
	openButton  *widget.Button
	saveButton  *widget.Button
	sheetButton *widget.Button
	applyButton *widget.Button
}

// NewMasker builds the controller and its widgets. window is used as the
// parent of file and error dialogs and may be nil when none are shown.
func NewMasker(cfg config.Config, window fyne.Window) *Masker {
	m := &Masker{
		cfg:    cfg,
		brush:  state.NewBrush(cfg.BrushWidth),
		window: window,
		Canvas: NewMaskCanvas(cfg.StrokeColor),
		status: widget.NewLabel("Open an image to start"),
	}
	m.Canvas.OnPress = m.handlePress
	m.Canvas.OnDrag = m.handleDrag
	m.Canvas.OnRelease = m.handleRelease
	return m
}

func (m *Masker) Session() *state.Session { return m.session }
func (m *Masker) Brush() *state.Brush       { return m.brush }

// Status returns the text of the status line.
func (m *Masker) Status() string { return m.status.Text }

// SetStatus shows text in the status line and logs it.
func (m *Masker) SetStatus(text string) {
	log.Printf("[UI] %s", text)
	m.status.SetText(text)
}

// LoadImage decodes r and starts a new session, discarding the previous
// preview, strokes and mask. On error the current session is kept.
func (m *Masker) LoadImage(r io.Reader, name string) error {
	img, format, err := imageio.Decode(r)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	m.startSession(name, format, img)
	return nil
}

// LoadFile loads the image at path.
func (m *Masker) LoadFile(path string) error {
	img, format, err := imageio.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	m.startSession(path, format, img)
	return nil
}

func (m *Masker) startSession(name, format string, img image.Image) {
	m.session = state.NewSession(name, img, m.cfg.PreviewHeight)
	m.Canvas.SetPreview(m.session.Preview)
	m.enableExport()

	size := m.session.OriginalSize()
	m.SetStatus(fmt.Sprintf("Loaded %s (%s, %dx%d)", name, format, size.X, size.Y))
}

// SaveMask writes the current mask as a grayscale PNG at the original size.
func (m *Masker) SaveMask(w io.Writer) error {
	if m.session == nil {
		return ErrNoImage
	}
	return export.WriteMask(w, m.session.Mask, m.session.OriginalSize())
}

// ExportSheet writes the PDF summary of the current session.
func (m *Masker) ExportSheet(w io.Writer) error {
	if m.session == nil {
		return ErrNoImage
	}
	tint := m.cfg.StrokeColor
	tint.A = 128
	return export.WriteSheet(w, m.session, m.brush.Width(), tint)
}

// ConfirmBrush applies text as the brush width. Invalid input is reported
// in the status line and the previous width stays in effect.
func (m *Masker) ConfirmBrush(text string) bool {
	if err := m.brush.Set(text); err != nil {
		m.SetStatus(fmt.Sprintf("Invalid brush width, keeping %d: %v", m.brush.Width(), err))
		return false
	}
	m.SetStatus(fmt.Sprintf("Brush width set to %d", m.brush.Width()))
	return true
}

func (m *Masker) handlePress(p mask.Point) {
	if m.session != nil {
		m.session.BeginStroke(p)
	}
}

func (m *Masker) handleDrag(p mask.Point) {
	if m.session == nil {
		return
	}
	seg, _, ok := m.session.ContinueStroke(p, m.brush.Width())
	if ok {
		m.Canvas.AddStroke(seg, m.brush.Width())
	}
}

func (m *Masker) handleRelease() {
	if m.session != nil {
		m.session.EndStroke()
	}
}

func (m *Masker) enableExport() {
	for _, b := range []*widget.Button{m.saveButton, m.sheetButton} {
		if b != nil {
			b.Enable()
		}
	}
}

func (m *Masker) showError(err error) {
	log.Printf("[UI] Error: %v", err)
	m.status.SetText(err.Error())
	if m.window != nil {
		dialog.ShowError(err, m.window)
	}
}

// ShowOpenDialog asks for a source image.
func (m *Masker) ShowOpenDialog() {
	d := dialog.NewFileOpen(m.onOpenChosen, m.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions))
	d.Show()
}

// ShowSaveDialog asks where to write the PNG mask.
func (m *Masker) ShowSaveDialog() {
	d := dialog.NewFileSave(m.onSaveChosen, m.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.SetFileName("mask.png")
	d.Show()
}

// ShowSheetDialog asks where to write the PDF sheet.
func (m *Masker) ShowSheetDialog() {
	d := dialog.NewFileSave(m.onSheetChosen, m.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.SetFileName("mask-sheet.pdf")
	d.Show()
}

// A nil reader or writer means the dialog was cancelled, which is a no-op.

func (m *Masker) onOpenChosen(reader fyne.URIReadCloser, err error) {
	if err != nil {
		m.showError(err)
		return
	}
	if reader == nil {
		return
	}
	defer closeLogged(reader)
	if err := m.LoadImage(reader, reader.URI().Name()); err != nil {
		m.showError(err)
	}
}

func (m *Masker) onSaveChosen(writer fyne.URIWriteCloser, err error) {
	m.writeChosen(writer, err, "Mask", m.SaveMask)
}

func (m *Masker) onSheetChosen(writer fyne.URIWriteCloser, err error) {
	m.writeChosen(writer, err, "Sheet", m.ExportSheet)
}

func (m *Masker) writeChosen(writer fyne.URIWriteCloser, err error, what string, write func(io.Writer) error) {
	if err != nil {
		m.showError(err)
		return
	}
	if writer == nil {
		return
	}
	defer closeLogged(writer)
	if err := write(writer); err != nil {
		m.showError(fmt.Errorf("save %s: %w", writer.URI().Name(), err))
		return
	}
	m.SetStatus(fmt.Sprintf("%s saved: %s", what, writer.URI().Path()))
}

func closeLogged(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("[UI] Error closing file: %v", err)
	}
}
