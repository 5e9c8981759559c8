package cipher

import (
	"errors"
	"testing"
)

func TestPlayfairGrid(t *testing.T) {
	p, err := NewPlayfair("PLAYFAIR")
	if err != nil {
		t.Fatalf("NewPlayfair: %v", err)
	}

	// Deduplicated key letters first (the second A and the I from the merged
	// J position drop out), then the rest of the 25-letter alphabet.
	want := "PLAYFIRBCDEGHKMNOQSTUVWXZ"
	if got := string(p.grid[:]); got != want {
		t.Errorf("grid = %q, want %q", got, want)
	}

	var seen [26]bool
	for _, ch := range p.grid {
		if seen[ch-'A'] {
			t.Errorf("duplicate letter %c in grid", ch)
		}
		seen[ch-'A'] = true
	}
	if seen['J'-'A'] {
		t.Error("J must not appear in the grid")
	}
	if p.pos['J'-'A'] != p.pos['I'-'A'] {
		t.Error("J must share I's grid cell")
	}
}

func TestPlayfairKnownVector(t *testing.T) {
	p, err := NewPlayfair("PLAYFAIR")
	if err != nil {
		t.Fatalf("NewPlayfair: %v", err)
	}

	// HELLO prepares to HE LX LO: HE is a same-row pair, LX a rectangle,
	// LO a same-column pair.
	enc := p.Apply("HELLO", Encrypt)
	if enc != "KGYVRV" {
		t.Fatalf("Encrypt(HELLO) = %q, want KGYVRV", enc)
	}
	if dec := p.Apply(enc, Decrypt); dec != "HELXLO" {
		t.Errorf("Decrypt(%q) = %q, want HELXLO (round trip modulo filler)", enc, dec)
	}
}

func TestPlayfairPrepare(t *testing.T) {
	p, err := NewPlayfair("KEYWORD")
	if err != nil {
		t.Fatalf("NewPlayfair: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"doubled letter broken", "HELLO", "HELXLO"},
		{"odd length padded", "CAT", "CATX"},
		{"doubled X uses Q", "XX", "XQXQ"},
		{"J merged into I, double Z broken then padded", "JAZZ", "IAZXZX"},
		{"lowercase folded, non-letters dropped", "he said: 42!", "HESAID"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.prepare(tt.text); got != tt.want {
				t.Errorf("prepare(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPlayfairRoundTrip(t *testing.T) {
	p, err := NewPlayfair("MONARCHY")
	if err != nil {
		t.Fatalf("NewPlayfair: %v", err)
	}

	for _, text := range []string{"INSTRUMENTS", "THEQUICKBROWNFOX", "ATTACKATDAWN"} {
		prepared := p.prepare(text)
		enc := p.Apply(text, Encrypt)
		if dec := p.Apply(enc, Decrypt); dec != prepared {
			t.Errorf("Decrypt(Encrypt(%q)) = %q, want prepared form %q", text, dec, prepared)
		}
	}
}

func TestPlayfairInvalidKey(t *testing.T) {
	for _, key := range []string{"", "1234", "!?.,"} {
		_, err := NewPlayfair(key)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewPlayfair(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}
