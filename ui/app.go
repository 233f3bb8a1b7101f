package ui

import (
	"log"
	"os"

	"fyne.io/fyne/v2"

	"swift-calc/internal/config"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, cfg config.Config) fyne.Window {
	win := app.NewWindow("Calculator")
	win.Resize(NewWindowSize(cfg.WindowWidth, cfg.WindowHeight))

	var logger *log.Logger
	if cfg.LogPresses {
		logger = log.New(os.Stderr, "calc: ", log.LstdFlags)
	}

	view := NewCalculatorView(logger)
	win.SetContent(view.Container())

	return win
}
