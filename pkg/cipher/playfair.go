package cipher

import (
	"fmt"
	"strings"
)

// gridAlphabet is the 25-letter Playfair alphabet, with J merged into I.
const gridAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// PlayfairCipher substitutes digraphs (letter pairs) using a 5x5 grid derived
// from the key. The cipher is defined only over letters: digraph preparation
// uppercases input, merges J into I, drops every other byte, breaks doubled
// pairs with a filler letter, and pads an odd-length tail. Both modes operate
// on the prepared text, so the round-trip contract is modulo that
// preparation: decrypting an encryption of "HELLO" yields "HELXLO".
type PlayfairCipher struct {
	grid [25]byte
	// pos maps a letter (0..25, 'A'..'Z') to its grid index; J shares I's cell.
	pos [26]int
}

// NewPlayfair validates that key contains at least one ASCII letter and
// builds the grid: deduplicated key letters in first-occurrence order, then
// the remaining grid alphabet in canonical order.
func NewPlayfair(key string) (*PlayfairCipher, error) {
	projected := projectLetters(key)
	if projected == "" {
		return nil, fmt.Errorf("%w: playfair key %q contains no letters", ErrInvalidKey, key)
	}

	p := &PlayfairCipher{}
	var seen [26]bool
	n := 0
	place := func(ch byte) {
		if ch == 'J' {
			ch = 'I'
		}
		if seen[ch-'A'] {
			return
		}
		seen[ch-'A'] = true
		p.grid[n] = ch
		p.pos[ch-'A'] = n
		n++
	}
	for i := 0; i < len(projected); i++ {
		place(projected[i])
	}
	for i := 0; i < len(gridAlphabet); i++ {
		place(gridAlphabet[i])
	}
	p.pos['J'-'A'] = p.pos['I'-'A']
	return p, nil
}

func (p *PlayfairCipher) Name() string { return Playfair.String() }

// Apply substitutes each prepared digraph by the grid rules: same row shifts
// columns, same column shifts rows, otherwise the rectangle rule swaps
// columns. Decrypt shifts in the opposite direction.
func (p *PlayfairCipher) Apply(text string, mode Mode) string {
	prepared := p.prepare(text)

	// +1 column/row for Encrypt, +4 (== -1 mod 5) for Decrypt.
	step := 1
	if mode == Decrypt {
		step = 4
	}

	out := make([]byte, len(prepared))
	for i := 0; i+1 < len(prepared); i += 2 {
		a := p.pos[prepared[i]-'A']
		b := p.pos[prepared[i+1]-'A']
		aRow, aCol := a/5, a%5
		bRow, bCol := b/5, b%5
		switch {
		case aRow == bRow:
			out[i] = p.grid[aRow*5+(aCol+step)%5]
			out[i+1] = p.grid[bRow*5+(bCol+step)%5]
		case aCol == bCol:
			out[i] = p.grid[((aRow+step)%5)*5+aCol]
			out[i+1] = p.grid[((bRow+step)%5)*5+bCol]
		default:
			out[i] = p.grid[aRow*5+bCol]
			out[i+1] = p.grid[bRow*5+aCol]
		}
	}
	return string(out)
}

// prepare reduces text to the grid alphabet and forms digraphs: a pair of
// identical letters is broken by inserting filler 'X' ('Q' when the doubled
// letter is itself 'X') and scanning resumes from the second letter; a final
// unpaired letter is padded the same way.
func (p *PlayfairCipher) prepare(text string) string {
	letters := projectLetters(text)
	letters = strings.Map(func(r rune) rune {
		if r == 'J' {
			return 'I'
		}
		return r
	}, letters)

	var out strings.Builder
	out.Grow(len(letters) + 1)
	for i := 0; i < len(letters); {
		a := letters[i]
		out.WriteByte(a)
		if i+1 == len(letters) || letters[i+1] == a {
			out.WriteByte(filler(a))
			i++
			continue
		}
		out.WriteByte(letters[i+1])
		i += 2
	}
	return out.String()
}

func filler(doubled byte) byte {
	if doubled == 'X' {
		return 'Q'
	}
	return 'X'
}

var _ Cipher = (*PlayfairCipher)(nil)
