package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar builds the row of controls above the canvas and hands the
// buttons to m so it can enable them once an image is loaded.
func NewToolbar(m *Masker) fyne.CanvasObject {
	m.openButton = widget.NewButtonWithIcon("Open image", theme.FolderOpenIcon(), m.ShowOpenDialog)

	m.saveButton = widget.NewButtonWithIcon("Save mask", theme.DocumentSaveIcon(), m.ShowSaveDialog)
	m.sheetButton = widget.NewButtonWithIcon("Export sheet", theme.DocumentPrintIcon(), m.ShowSheetDialog)
	if m.session == nil {
		m.saveButton.Disable()
		m.sheetButton.Disable()
	}

	m.brushEntry = widget.NewEntry()
	m.brushEntry.SetText(strconv.Itoa(m.brush.Width()))
	m.applyButton = widget.NewButton("Apply", func() {
		if !m.ConfirmBrush(m.brushEntry.Text) {
			m.brushEntry.SetText(strconv.Itoa(m.brush.Width()))
		}
	})
	entryBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 36)), m.brushEntry)

	return container.NewHBox(
		m.openButton,
		m.saveButton,
		m.sheetButton,
		widget.NewSeparator(),
		widget.NewLabel("Brush width:"),
		entryBox,
		m.applyButton,
		layout.NewSpacer(),
	)
}

// Content lays out the toolbar, the canvas and the status line.
func (m *Masker) Content() fyne.CanvasObject {
	toolbar := NewToolbar(m)
	return container.NewBorder(toolbar, m.status, nil, nil, container.NewCenter(m.Canvas))
}
