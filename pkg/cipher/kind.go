package cipher

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported substitution cipher algorithms.
type Kind int

const (
	// Caesar shifts each letter a fixed distance through the alphabet.
	Caesar Kind = iota
	// Playfair substitutes letter pairs using a 5x5 key-derived grid.
	Playfair
	// Vigenere shifts each letter by a cyclically repeated keyword.
	Vigenere
)

func (k Kind) String() string {
	switch k {
	case Caesar:
		return "caesar"
	case Playfair:
		return "playfair"
	case Vigenere:
		return "vigenere"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kinds returns every supported kind in stable listing order.
func Kinds() []Kind {
	return []Kind{Caesar, Playfair, Vigenere}
}

// ParseKind resolves a cipher name to its Kind, case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "caesar":
		return Caesar, nil
	case "playfair":
		return Playfair, nil
	case "vigenere", "vigenère":
		return Vigenere, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
