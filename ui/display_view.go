package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// DisplayView renders the calculator display, right-aligned above the keypad.
type DisplayView struct {
	text      *canvas.Text
	container *fyne.Container
}

// NewDisplayView creates an empty display.
func NewDisplayView() *DisplayView {
	dv := &DisplayView{}

	dv.text = canvas.NewText("", textColor)
	dv.text.TextSize = DisplayTextSize
	dv.text.Alignment = fyne.TextAlignTrailing

	inset := canvas.NewRectangle(backgroundColor)
	inset.SetMinSize(fyne.NewSize(DisplayPadding, 0))

	dv.container = container.NewHBox(layout.NewSpacer(), dv.text, inset)
	return dv
}

// Container returns the display's container.
func (dv *DisplayView) Container() *fyne.Container {
	return dv.container
}

// SetText replaces the shown value. Call from the Fyne main goroutine.
func (dv *DisplayView) SetText(s string) {
	dv.text.Text = s
	dv.text.Refresh()
}

// Text returns the shown value.
func (dv *DisplayView) Text() string {
	return dv.text.Text
}
