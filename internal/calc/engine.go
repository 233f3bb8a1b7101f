// Package calc holds the calculator keys and the input state machine that
// turns key presses into the display string.
package calc

// ButtonPressed is delivered once per tap, in tap order.
type ButtonPressed struct {
	Button Button
}

// Engine owns the display of one calculator session.
//
// Digit and decimal keys replace the display with their label. Operator,
// meta and equals keys are accepted and leave the display unchanged.
// An Engine is not safe for concurrent use; callers deliver presses from a
// single goroutine.
type Engine struct {
	display string
}

// NewEngine starts a session with an empty display.
func NewEngine() *Engine {
	return &Engine{}
}

// Display returns the current display value.
func (e *Engine) Display() string {
	return e.display
}

// Handle applies one key press.
func (e *Engine) Handle(ev ButtonPressed) {
	switch ev.Button.Kind() {
	case KindDigit, KindDecimal:
		e.display = ev.Button.Label()
	case KindOperator, KindMeta, KindEquals:
	}
}

// Press is shorthand for Handle(ButtonPressed{Button: b}).
func (e *Engine) Press(b Button) {
	e.Handle(ButtonPressed{Button: b})
}
