package ui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"swift-calc/internal/calc"
	"swift-calc/internal/config"
)

func TestCalculatorView_Initial(t *testing.T) {
	test.NewTempApp(t)

	v := NewCalculatorView(nil)
	if got := v.Display().Text(); got != "" {
		t.Errorf("initial display = %q, want empty", got)
	}
	for _, b := range calc.Buttons() {
		key := v.Key(b)
		if key == nil {
			t.Errorf("no key rendered for %s", b)
			continue
		}
		if key.Text != b.Label() {
			t.Errorf("key %s text = %q, want %q", b, key.Text, b.Label())
		}
		if key.BackgroundColor() != KeyColor(b.ColorClass()) {
			t.Errorf("key %s has wrong background", b)
		}
	}
}

func TestCalculatorView_Taps(t *testing.T) {
	tests := []struct {
		name string
		taps []calc.Button
		want string
	}{
		{"digit", []calc.Button{calc.Seven}, "7"},
		{"operator is noop", []calc.Button{calc.Seven, calc.Plus}, "7"},
		{"digit replaces", []calc.Button{calc.Seven, calc.Three}, "3"},
		{"decimal replaces", []calc.Button{calc.Zero, calc.Decimal}, "."},
		{"ac on fresh session", []calc.Button{calc.AC}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.NewTempApp(t)
			v := NewCalculatorView(nil)
			for _, b := range tt.taps {
				test.Tap(v.Key(b))
			}
			if got := v.Display().Text(); got != tt.want {
				t.Errorf("display = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculatorView_LogsPresses(t *testing.T) {
	test.NewTempApp(t)

	var buf bytes.Buffer
	v := NewCalculatorView(log.New(&buf, "", 0))
	test.Tap(v.Key(calc.PlusMinus))
	test.Tap(v.Key(calc.Four))

	out := buf.String()
	if !strings.Contains(out, "pressed plusMinus") || !strings.Contains(out, "pressed four") {
		t.Errorf("log output = %q", out)
	}
}

func TestBuildMainWindow(t *testing.T) {
	a := test.NewTempApp(t)

	win := BuildMainWindow(a, config.Config{WindowWidth: 375, WindowHeight: 667})
	if win == nil {
		t.Fatal("BuildMainWindow returned nil")
	}
	if win.Title() != "Calculator" {
		t.Errorf("Title() = %q, want Calculator", win.Title())
	}
	if win.Content() == nil {
		t.Error("window has no content")
	}
}
