package textproc

import (
	"strings"
	"testing"
)

func TestTransformRune(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', "A"},
		{'Z', "Z"},
		{'0', "ZERO"},
		{'9', "NINE"},
		{' ', ""},
		{'!', ""},
		{'é', ""},
	}
	for _, tt := range tests {
		if got := TransformRune(tt.r); got != tt.want {
			t.Errorf("TransformRune(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mixed case and punctuation", "Hello, World!", "HELLOWORLD"},
		{"digits spelled out", "Agent 007", "AGENTZEROZEROSEVEN"},
		{"whitespace dropped", "a b\tc\nd", "ABCD"},
		{"empty", "", ""},
		{"nothing survives", "¡¿!? ...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
