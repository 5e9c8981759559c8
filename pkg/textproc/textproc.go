// Package textproc normalizes raw input into the uppercase A-Z alphabet the
// ciphers operate over.
package textproc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var digitWords = [10]string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR",
	"FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
}

// TransformRune maps one input rune to its normalized form: ASCII letters to
// their uppercase form, digits to their spelled-out words, everything else to
// the empty string.
func TransformRune(r rune) string {
	switch {
	case r >= 'A' && r <= 'Z':
		return string(r)
	case r >= 'a' && r <= 'z':
		return string(r - 'a' + 'A')
	case r >= '0' && r <= '9':
		return digitWords[r-'0']
	default:
		return ""
	}
}

// Normalize streams r through TransformRune and returns the normalized text.
func Normalize(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var out strings.Builder
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return out.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		out.WriteString(TransformRune(ch))
	}
}
