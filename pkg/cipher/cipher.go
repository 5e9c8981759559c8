// Package cipher implements the classical substitution ciphers supported by
// cipherchain and the factory that validates keys and constructs instances.
package cipher

// Alphabet is the character set the ciphers in this package substitute over.
// Upstream normalization (pkg/textproc) only ever emits these letters, so a
// single consistent alphabet covers every cipher kind.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Mode selects the direction of a cipher transformation.
type Mode int

const (
	// Encrypt applies the forward transformation.
	Encrypt Mode = iota
	// Decrypt applies the exact inverse of Encrypt.
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Cipher is a single substitution cipher bound to one validated key.
//
// Apply is a pure transformation: the same text, mode, and key always produce
// the same output, and a Decrypt of an Encrypt restores the original text for
// any input over Alphabet. Apply must accept arbitrary bytes without failing;
// each implementation documents how it treats bytes outside Alphabet.
type Cipher interface {
	// Name returns the cipher's kind name, e.g. "caesar".
	Name() string

	// Apply transforms text in the given mode.
	Apply(text string, mode Mode) string
}

// Parallelizable is implemented by ciphers whose output for each character
// depends only on that character and the key, never on its position in the
// text or on neighboring characters. Text may be split into contiguous chunks
// and run through such a cipher chunk by chunk without changing the result.
//
// Caesar qualifies. Playfair does not (substitution operates on letter pairs)
// and neither does Vigenère (the key cycle depends on absolute position).
type Parallelizable interface {
	Parallelizable() bool
}
