package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"swift-calc/internal/cli"
	"swift-calc/internal/config"
	"swift-calc/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No key arguments = use GUI
	root := cli.NewRootCommand(func() {
		a := app.NewWithID(cfg.AppID)
		win := ui.BuildMainWindow(a, cfg)
		win.ShowAndRun()
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
