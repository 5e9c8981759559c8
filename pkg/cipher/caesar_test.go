package cipher

import (
	"errors"
	"testing"
)

func TestCaesarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  string
		text string
		want string
	}{
		{"basic shift", "5", "HELLOWORLD", "MJQQTBTWQI"},
		{"wrap around", "3", "XYZ", "ABC"},
		{"large key reduced", "31", "HELLOWORLD", "MJQQTBTWQI"},
		{"negative key", "-21", "HELLOWORLD", "MJQQTBTWQI"},
		{"empty text", "7", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCaesar(tt.key)
			if err != nil {
				t.Fatalf("NewCaesar(%q): %v", tt.key, err)
			}
			enc := c.Apply(tt.text, Encrypt)
			if enc != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.text, enc, tt.want)
			}
			if dec := c.Apply(enc, Decrypt); dec != tt.text {
				t.Errorf("Decrypt(Encrypt(%q)) = %q, want original", tt.text, dec)
			}
		})
	}
}

func TestCaesarIdentityShifts(t *testing.T) {
	text := "THEQUICKBROWNFOX"
	for _, key := range []string{"0", "26", "52", "-26"} {
		c, err := NewCaesar(key)
		if err != nil {
			t.Fatalf("NewCaesar(%q): %v", key, err)
		}
		if got := c.Apply(text, Encrypt); got != text {
			t.Errorf("shift %s: Encrypt(%q) = %q, want identity", key, text, got)
		}
	}
}

func TestCaesarInvalidKey(t *testing.T) {
	for _, key := range []string{"abc", "", "3.5", "5x"} {
		_, err := NewCaesar(key)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewCaesar(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestCaesarPassThrough(t *testing.T) {
	c, err := NewCaesar("13")
	if err != nil {
		t.Fatalf("NewCaesar: %v", err)
	}
	// Bytes outside the alphabet survive both directions untouched.
	text := "HELLO, world! 123\n"
	enc := c.Apply(text, Encrypt)
	if dec := c.Apply(enc, Decrypt); dec != text {
		t.Errorf("round trip with non-alphabet bytes = %q, want %q", dec, text)
	}
	if enc[5] != ',' || enc[len(enc)-1] != '\n' {
		t.Errorf("non-alphabet bytes were transformed: %q", enc)
	}
}

func TestCaesarCustomAlphabet(t *testing.T) {
	c := NewCaesarShift(2, "0123456789")
	if got := c.Apply("0189", Encrypt); got != "2301" {
		t.Errorf("Encrypt over digit alphabet = %q, want %q", got, "2301")
	}
	if got := c.Apply("2301", Decrypt); got != "0189" {
		t.Errorf("Decrypt over digit alphabet = %q, want %q", got, "0189")
	}
}
