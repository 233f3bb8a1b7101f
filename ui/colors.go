package ui

import (
	"image/color"

	"swift-calc/internal/calc"
)

var (
	backgroundColor = color.Black
	textColor       = color.White

	digitKeyColor    = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	metaKeyColor     = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	operatorKeyColor = color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
)

// KeyColor returns the background color for a key's color class.
func KeyColor(c calc.ColorClass) color.Color {
	switch c {
	case calc.DigitStyle:
		return digitKeyColor
	case calc.MetaStyle:
		return metaKeyColor
	default:
		return operatorKeyColor
	}
}
