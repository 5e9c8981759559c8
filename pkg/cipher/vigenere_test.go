package cipher

import (
	"errors"
	"testing"
)

func TestVigenereKnownVector(t *testing.T) {
	v, err := NewVigenere("KEY")
	if err != nil {
		t.Fatalf("NewVigenere: %v", err)
	}

	enc := v.Apply("HELLOHELLO", Encrypt)
	if enc != "RIJVSFOPJY" {
		t.Fatalf("Encrypt(HELLOHELLO) = %q, want RIJVSFOPJY", enc)
	}
	if dec := v.Apply(enc, Decrypt); dec != "HELLOHELLO" {
		t.Errorf("Decrypt(%q) = %q, want original", enc, dec)
	}
}

func TestVigenereKeyProjection(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"lemon", "LEMON"},
		{"Le Mon!", "LEMON"},
		{"k3y", "KY"},
	}
	for _, tt := range tests {
		v, err := NewVigenere(tt.raw)
		if err != nil {
			t.Fatalf("NewVigenere(%q): %v", tt.raw, err)
		}
		if v.Key() != tt.want {
			t.Errorf("NewVigenere(%q).Key() = %q, want %q", tt.raw, v.Key(), tt.want)
		}
	}
}

func TestVigenereSkipsNonLetters(t *testing.T) {
	v, err := NewVigenere("KEY")
	if err != nil {
		t.Fatalf("NewVigenere: %v", err)
	}

	// The space passes through and must not consume a key position: the L
	// after it is still shifted by Y, exactly as in the unspaced text.
	enc := v.Apply("HE LO", Encrypt)
	if enc != "RI JY" {
		t.Fatalf("Encrypt(\"HE LO\") = %q, want \"RI JY\"", enc)
	}
	if dec := v.Apply(enc, Decrypt); dec != "HE LO" {
		t.Errorf("Decrypt(%q) = %q, want original", enc, dec)
	}
}

func TestVigenereInvalidKey(t *testing.T) {
	for _, key := range []string{"", "123", "?!"} {
		_, err := NewVigenere(key)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewVigenere(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestVigenereSingleLetterKeyEqualsCaesar(t *testing.T) {
	v, err := NewVigenere("D")
	if err != nil {
		t.Fatalf("NewVigenere: %v", err)
	}
	c := NewCaesarShift(3, Alphabet)

	text := "THEQUICKBROWNFOX"
	if vg, cs := v.Apply(text, Encrypt), c.Apply(text, Encrypt); vg != cs {
		t.Errorf("Vigenere(D) = %q, Caesar(3) = %q, want equal", vg, cs)
	}
}
