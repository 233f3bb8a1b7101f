package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"swift-calc/internal/calc"
)

// CalculatorView wires the keypad and display to one engine.
type CalculatorView struct {
	engine  *calc.Engine
	display *DisplayView
	keys    map[calc.Button]*StyledButton
	logger  *log.Logger

	container *fyne.Container
}

// NewCalculatorView builds the keypad for a new session. Presses are logged to
// logger when it is non-nil.
func NewCalculatorView(logger *log.Logger) *CalculatorView {
	v := &CalculatorView{
		engine:  calc.NewEngine(),
		display: NewDisplayView(),
		keys:    make(map[calc.Button]*StyledButton),
		logger:  logger,
	}

	rows := calc.Grid()
	var objects []fyne.CanvasObject
	for _, row := range rows {
		for _, b := range row {
			btn := NewStyledButton(b.Label(), func() { v.press(b) },
				KeyColor(b.ColorClass()), textColor, KeyTextSize)
			v.keys[b] = btn
			objects = append(objects, btn)
		}
	}
	keypad := container.New(newKeypadLayout(rows), objects...)

	v.display.SetText(v.engine.Display())

	content := container.NewVBox(v.display.Container(), keypad)
	v.container = container.NewStack(
		canvas.NewRectangle(backgroundColor),
		container.NewBorder(nil, container.NewPadded(content), nil, nil),
	)
	return v
}

// Container returns the view's root container.
func (v *CalculatorView) Container() *fyne.Container {
	return v.container
}

// Display returns the display view.
func (v *CalculatorView) Display() *DisplayView {
	return v.display
}

// Key returns the button rendered for b, or nil if b is not on the keypad.
func (v *CalculatorView) Key(b calc.Button) *StyledButton {
	return v.keys[b]
}

func (v *CalculatorView) press(b calc.Button) {
	if v.logger != nil {
		v.logger.Printf("pressed %s", b)
	}
	v.engine.Handle(calc.ButtonPressed{Button: b})
	v.display.SetText(v.engine.Display())
}
