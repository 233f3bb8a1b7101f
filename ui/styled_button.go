package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StyledButton is a rounded button with custom background and text colors.
type StyledButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
	textSize float32
}

// NewStyledButton creates a button with custom colors.
func NewStyledButton(label string, tapped func(), bgColor, txtColor color.Color, textSize float32) *StyledButton {
	btn := &StyledButton{
		bgColor:  bgColor,
		txtColor: txtColor,
		textSize: textSize,
	}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// BackgroundColor returns the fill color of the key.
func (b *StyledButton) BackgroundColor() color.Color {
	return b.bgColor
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = b.textSize

	return &styledBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type styledBtnRenderer struct {
	btn     *StyledButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *styledBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	// Fully rounded ends: circles for square keys, a capsule for zero.
	radius := size.Height / 2
	if size.Width < size.Height {
		radius = size.Width / 2
	}
	r.bg.CornerRadius = radius

	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *styledBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*2, labelMin.Height+pad*2)
}

func (r *styledBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text
	r.label.Color = r.btn.txtColor
	r.bg.FillColor = r.btn.bgColor

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *styledBtnRenderer) Destroy()                     {}
