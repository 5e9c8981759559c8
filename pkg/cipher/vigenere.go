package cipher

import (
	"fmt"
	"strings"
)

// VigenereCipher shifts each letter by the alphabet position of the current
// keyword letter, cycling through the keyword. The key cycle advances only on
// letters actually transformed; pass-through bytes do not consume a key
// position, so interleaved non-letters never desynchronize the keyword.
type VigenereCipher struct {
	key string
}

// NewVigenere validates that key contains at least one ASCII letter and
// stores its uppercased letters-only projection as the keyword.
func NewVigenere(key string) (*VigenereCipher, error) {
	projected := projectLetters(key)
	if projected == "" {
		return nil, fmt.Errorf("%w: vigenere key %q contains no letters", ErrInvalidKey, key)
	}
	return &VigenereCipher{key: projected}, nil
}

func (v *VigenereCipher) Name() string { return Vigenere.String() }

// Key returns the validated keyword the cipher shifts with.
func (v *VigenereCipher) Key() string { return v.key }

// Apply adds the keyword shift for Encrypt and subtracts it for Decrypt.
// Bytes outside A-Z pass through unchanged.
func (v *VigenereCipher) Apply(text string, mode Mode) string {
	var out strings.Builder
	out.Grow(len(text))
	pos := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < 'A' || ch > 'Z' {
			out.WriteByte(ch)
			continue
		}
		shift := int(v.key[pos%len(v.key)] - 'A')
		if mode == Decrypt {
			shift = 26 - shift
		}
		out.WriteByte('A' + byte((int(ch-'A')+shift)%26))
		pos++
	}
	return out.String()
}

// projectLetters uppercases key and drops everything that is not an ASCII
// letter.
func projectLetters(key string) string {
	var out strings.Builder
	for i := 0; i < len(key); i++ {
		ch := key[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out.WriteByte(ch)
		case ch >= 'a' && ch <= 'z':
			out.WriteByte(ch - 'a' + 'A')
		}
	}
	return out.String()
}

var _ Cipher = (*VigenereCipher)(nil)
