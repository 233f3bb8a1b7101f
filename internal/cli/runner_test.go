package cli

import (
	"strings"
	"testing"

	"swift-calc/internal/calc"
)

func TestParseKeys(t *testing.T) {
	got, err := ParseKeys([]string{"7", "+", "AC", "+/-", "."})
	if err != nil {
		t.Fatalf("ParseKeys() error = %v", err)
	}
	want := []calc.Button{calc.Seven, calc.Plus, calc.AC, calc.PlusMinus, calc.Decimal}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseKeys_Unknown(t *testing.T) {
	_, err := ParseKeys([]string{"7", "sqrt"})
	if err == nil {
		t.Fatal("ParseKeys() with unknown label should return error")
	}
	if !strings.Contains(err.Error(), `unknown key "sqrt"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{nil, ""},
		{[]string{"7"}, "7"},
		{[]string{"7", "+"}, "7"},
		{[]string{"7", "3"}, "3"},
		{[]string{"0", "."}, "."},
		{[]string{"AC"}, ""},
	}

	for _, tt := range tests {
		got, err := RunKeys(tt.keys, Options{}, nil)
		if err != nil {
			t.Errorf("RunKeys(%v) error = %v", tt.keys, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RunKeys(%v) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}

func TestRunKeys_Verbose(t *testing.T) {
	var lines []string
	_, err := RunKeys([]string{"7", "+", "3"}, Options{Verbose: true}, func(l string) {
		lines = append(lines, l)
	})
	if err != nil {
		t.Fatalf("RunKeys() error = %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 trace lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "plus") || !strings.Contains(lines[1], `display="7"`) {
		t.Errorf("second trace line = %q", lines[1])
	}
}
