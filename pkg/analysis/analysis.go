// Package analysis infers Caesar shifts from ciphertext by English
// letter-frequency analysis. It is pedagogical: it ranks the 26 candidate
// shifts, it does not break anything stronger.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/TFMV/cipherchain/pkg/cipher"
	"github.com/rs/zerolog/log"
)

// ErrNoLetters is returned when the text contains nothing to analyze.
var ErrNoLetters = errors.New("analysis: text contains no letters")

// englishFreq is the expected relative frequency (percent) of each letter
// A-Z in English text.
var englishFreq = [26]float64{
	8.17, 1.49, 2.78, 4.25, 12.70, 2.23, 2.02, 6.09, 6.97, 0.15,
	0.77, 4.03, 2.41, 6.75, 7.51, 1.93, 0.10, 5.99, 6.33, 9.06,
	2.76, 0.98, 2.36, 0.15, 1.97, 0.07,
}

// Candidate is one possible Caesar shift, scored against English letter
// frequencies. Lower Score (chi-squared) is better; Confidence is normalized
// over all 26 candidates and sums to 1.
type Candidate struct {
	Shift      int
	Key        string
	Score      float64
	Confidence float64
	Plaintext  string
}

// CrackCaesar scores every candidate shift against English letter
// frequencies and returns all 26 candidates ranked best first. Bytes outside
// A-Z are ignored for scoring but preserved in each candidate's Plaintext.
func CrackCaesar(text string) ([]Candidate, error) {
	var counts [26]int
	total := 0
	for i := 0; i < len(text); i++ {
		if ch := text[i]; ch >= 'A' && ch <= 'Z' {
			counts[ch-'A']++
			total++
		}
	}
	if total == 0 {
		return nil, ErrNoLetters
	}

	candidates := make([]Candidate, 26)
	weightSum := 0.0
	for shift := 0; shift < 26; shift++ {
		chi2 := 0.0
		for letter := 0; letter < 26; letter++ {
			// Decrypting with this shift maps ciphertext letter (letter+shift)
			// back onto plaintext letter.
			observed := float64(counts[(letter+shift)%26])
			expected := englishFreq[letter] / 100 * float64(total)
			diff := observed - expected
			chi2 += diff * diff / expected
		}
		candidates[shift] = Candidate{
			Shift:     shift,
			Key:       strconv.Itoa(shift),
			Score:     chi2,
			Plaintext: cipher.NewCaesarShift(shift, cipher.Alphabet).Apply(text, cipher.Decrypt),
		}
		weightSum += 1 / (chi2 + 1)
	}
	for i := range candidates {
		candidates[i].Confidence = (1 / (candidates[i].Score + 1)) / weightSum
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	log.Debug().
		Int("letters", total).
		Int("best_shift", candidates[0].Shift).
		Float64("best_score", candidates[0].Score).
		Msg("Ranked Caesar shift candidates")
	return candidates, nil
}

// Preview returns the first n bytes of the candidate's plaintext, with an
// ellipsis when truncated.
func (c Candidate) Preview(n int) string {
	if len(c.Plaintext) <= n {
		return c.Plaintext
	}
	return fmt.Sprintf("%s...", c.Plaintext[:n])
}
