package cli

import (
	"fmt"

	"swift-calc/internal/calc"
	"swift-calc/internal/format"
)

// ParseKeys converts key labels into buttons. It fails on the first label
// that names no key.
func ParseKeys(labels []string) ([]calc.Button, error) {
	buttons := make([]calc.Button, 0, len(labels))
	for _, l := range labels {
		b, ok := calc.ParseLabel(l)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", l)
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}

// RunKeys presses each labelled key on a new engine and returns the final
// display. When opts.Verbose is set, onLine receives one trace line per press.
// Nothing is pressed if any label is unknown.
func RunKeys(labels []string, opts Options, onLine func(string)) (string, error) {
	buttons, err := ParseKeys(labels)
	if err != nil {
		return "", err
	}

	engine := calc.NewEngine()
	for i, b := range buttons {
		engine.Press(b)
		if opts.Verbose && onLine != nil {
			onLine(format.Press(i+1, b, engine.Display()))
		}
	}
	return engine.Display(), nil
}
