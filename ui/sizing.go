package ui

import "swift-calc/internal/calc"

// KeySize returns the side of a regular key for a viewport of the given width.
// Four keys and five gaps span the width.
func KeySize(viewportWidth float32) float32 {
	size := (viewportWidth - (KeysPerRow+1)*KeySpacing) / KeysPerRow
	if size < 0 {
		return 0
	}
	return size
}

// KeyWidth returns the width of b's key. Zero is twice as wide as the others.
func KeyWidth(b calc.Button, viewportWidth float32) float32 {
	if b == calc.Zero {
		return KeySize(viewportWidth) * 2
	}
	return KeySize(viewportWidth)
}

// RowWidth returns the width of a row of keys including the gaps between them.
func RowWidth(row []calc.Button, viewportWidth float32) float32 {
	if len(row) == 0 {
		return 0
	}
	var w float32
	for _, b := range row {
		w += KeyWidth(b, viewportWidth)
	}
	return w + float32(len(row)-1)*KeySpacing
}
