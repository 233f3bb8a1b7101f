package ui

import (
	"fyne.io/fyne/v2"

	"swift-calc/internal/calc"
)

// keypadLayout places keys row by row, each row centered, sized from the
// container width. Objects must be in the same order as the flattened rows.
type keypadLayout struct {
	rows [][]calc.Button
}

func newKeypadLayout(rows [][]calc.Button) *keypadLayout {
	return &keypadLayout{rows: rows}
}

func (l *keypadLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	key := KeySize(size.Width)

	i := 0
	y := float32(0)
	for _, row := range l.rows {
		x := (size.Width - RowWidth(row, size.Width)) / 2
		for _, b := range row {
			if i >= len(objects) {
				return
			}
			w := KeyWidth(b, size.Width)
			objects[i].Move(fyne.NewPos(x, y))
			objects[i].Resize(fyne.NewSize(w, key))
			x += w + KeySpacing
			i++
		}
		y += key + KeySpacing
	}
}

func (l *keypadLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(MinViewportWidth, l.height(MinViewportWidth))
}

func (l *keypadLayout) height(width float32) float32 {
	n := float32(len(l.rows))
	if n == 0 {
		return 0
	}
	return n*KeySize(width) + (n-1)*KeySpacing
}
