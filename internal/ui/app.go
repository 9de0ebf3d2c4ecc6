package ui

import (
	"ImageMasker/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// RunApp opens the main window and blocks until it is closed. A failing
// startup image is returned before any window is shown.
func RunApp(cfg config.Config) error {
	myApp := app.NewWithID("io.imagemasker")
	myWindow := myApp.NewWindow("Image Masking Tool")
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	m := NewMasker(cfg, myWindow)
	content := m.Content()
	if cfg.ImagePath != "" {
		if err := m.LoadFile(cfg.ImagePath); err != nil {
			return err
		}
	}

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}
