package ui

import "fyne.io/fyne/v2"

// Keypad geometry
const (
	KeySpacing = 12 // gap between keys and around the keypad
	KeysPerRow = 4
)

// Text sizes
const (
	DisplayTextSize = 64
	KeyTextSize     = 32
	DisplayPadding  = 10 // trailing inset of the display text
)

// MinViewportWidth is the narrowest width the keypad is laid out for.
const MinViewportWidth = 280

// NewWindowSize returns the window size for the given dimensions.
func NewWindowSize(width, height float32) fyne.Size {
	return fyne.NewSize(width, height)
}
