package format

import (
	"fmt"
	"strings"

	"swift-calc/internal/calc"
)

// Grid renders the keypad as text, one row per line. Zero spans two cells.
func Grid(rows [][]calc.Button) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, btn := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			if btn == calc.Zero {
				b.WriteString(fmt.Sprintf("[%-9s]", btn.Label()))
				continue
			}
			b.WriteString(fmt.Sprintf("[%3s]", btn.Label()))
		}
	}
	return b.String()
}

// Press produces a single trace line for one key press and the display after it.
func Press(n int, btn calc.Button, display string) string {
	return fmt.Sprintf("%3d  %-10s %-4s display=%q", n, btn, btn.Label(), display)
}
