package calc

import (
	"strconv"
	"strings"
)

// Button identifies one calculator key.
type Button int

const (
	Zero Button = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Decimal
	Plus
	Minus
	Multiply
	Divide
	PlusMinus
	Percent
	AC
	Equals

	buttonCount
)

// Kind is the role a button plays in the input state machine.
type Kind int

const (
	KindDigit Kind = iota
	KindDecimal
	KindOperator
	KindMeta
	KindEquals
)

// ColorClass is a presentation hint for the key background.
type ColorClass int

const (
	DigitStyle ColorClass = iota
	MetaStyle
	OperatorStyle
)

var labels = [buttonCount]string{
	Zero:      "0",
	One:       "1",
	Two:       "2",
	Three:     "3",
	Four:      "4",
	Five:      "5",
	Six:       "6",
	Seven:     "7",
	Eight:     "8",
	Nine:      "9",
	Decimal:   ".",
	Plus:      "+",
	Minus:     "-",
	Multiply:  "x",
	Divide:    "/",
	PlusMinus: "+/-",
	Percent:   "%",
	AC:        "AC",
	Equals:    "=",
}

var names = [buttonCount]string{
	Zero:      "zero",
	One:       "one",
	Two:       "two",
	Three:     "three",
	Four:      "four",
	Five:      "five",
	Six:       "six",
	Seven:     "seven",
	Eight:     "eight",
	Nine:      "nine",
	Decimal:   "decimal",
	Plus:      "plus",
	Minus:     "minus",
	Multiply:  "multiply",
	Divide:    "divide",
	PlusMinus: "plusMinus",
	Percent:   "percent",
	AC:        "ac",
	Equals:    "equals",
}

// Valid reports whether b is one of the enumerated keys.
func (b Button) Valid() bool {
	return b >= Zero && b < buttonCount
}

// Label returns the glyph printed on the key.
func (b Button) Label() string {
	if !b.Valid() {
		return ""
	}
	return labels[b]
}

// String returns the key's identifier, e.g. "seven" or "plusMinus".
func (b Button) String() string {
	if !b.Valid() {
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
	return names[b]
}

// Kind returns the role of the key.
func (b Button) Kind() Kind {
	switch b {
	case Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return KindDigit
	case Decimal:
		return KindDecimal
	case Plus, Minus, Multiply, Divide:
		return KindOperator
	case PlusMinus, Percent, AC:
		return KindMeta
	case Equals:
		return KindEquals
	default:
		// Out-of-range values never replace the display.
		return KindEquals
	}
}

// ColorClass returns the background style for the key.
func (b Button) ColorClass() ColorClass {
	switch b.Kind() {
	case KindDigit, KindDecimal:
		return DigitStyle
	case KindMeta:
		return MetaStyle
	default:
		return OperatorStyle
	}
}

// Buttons returns every key in declaration order.
func Buttons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := Zero; b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

var grid = [][]Button{
	{AC, PlusMinus, Percent, Divide},
	{Seven, Eight, Nine, Multiply},
	{Four, Five, Six, Minus},
	{One, Two, Three, Plus},
	{Zero, Decimal, Equals},
}

// Grid returns the keypad layout, top row first. The result is a fresh copy.
func Grid() [][]Button {
	out := make([][]Button, len(grid))
	for i, row := range grid {
		out[i] = append([]Button(nil), row...)
	}
	return out
}

// ParseLabel returns the key whose label is label, ignoring case so that
// "ac" matches AC.
func ParseLabel(label string) (Button, bool) {
	for b := Zero; b < buttonCount; b++ {
		if strings.EqualFold(labels[b], label) {
			return b, true
		}
	}
	return 0, false
}
