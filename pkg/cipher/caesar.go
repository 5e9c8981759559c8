package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// CaesarCipher shifts each alphabet letter a fixed distance, wrapping at the
// end of the alphabet. Bytes outside the alphabet pass through unchanged.
type CaesarCipher struct {
	shift    int
	alphabet string
}

// NewCaesar validates key as a (possibly signed) integer and constructs the
// cipher over the default Alphabet. A non-numeric key is a hard error, never
// a silent zero shift.
func NewCaesar(key string) (*CaesarCipher, error) {
	shift, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return nil, fmt.Errorf("%w: caesar key %q is not an integer", ErrInvalidKey, key)
	}
	return NewCaesarShift(shift, Alphabet), nil
}

// NewCaesarShift constructs a Caesar cipher with an explicit shift and
// alphabet. The shift is reduced into [0, len(alphabet)) with a true
// mathematical modulus, so negative shifts are equivalent to their positive
// complements.
func NewCaesarShift(shift int, alphabet string) *CaesarCipher {
	size := len(alphabet)
	return &CaesarCipher{
		shift:    ((shift % size) + size) % size,
		alphabet: alphabet,
	}
}

func (c *CaesarCipher) Name() string { return Caesar.String() }

// Parallelizable reports true: each output byte depends only on the
// corresponding input byte and the fixed shift.
func (c *CaesarCipher) Parallelizable() bool { return true }

// Apply shifts forward for Encrypt and backward for Decrypt.
func (c *CaesarCipher) Apply(text string, mode Mode) string {
	size := len(c.alphabet)
	shift := c.shift
	if mode == Decrypt {
		shift = (size - c.shift) % size
	}

	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		idx := strings.IndexByte(c.alphabet, ch)
		if idx < 0 {
			out.WriteByte(ch)
			continue
		}
		out.WriteByte(c.alphabet[(idx+shift)%size])
	}
	return out.String()
}

var (
	_ Cipher         = (*CaesarCipher)(nil)
	_ Parallelizable = (*CaesarCipher)(nil)
)
