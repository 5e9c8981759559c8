package cipher

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeygenIterations is the number of PBKDF2 iterations for keyword derivation
	KeygenIterations = 100000
	// keygenSalt is a fixed application salt: two parties sharing a passphrase
	// must derive the same keyword, so the salt cannot be random.
	keygenSalt = "cipherchain/v1 keyword derivation"
	// maxUnbiasedByte is the largest multiple of 26 below 256. Bytes at or
	// above it are rejected so every letter is equally likely.
	maxUnbiasedByte = 234
)

// appendLetters maps accepted bytes of src onto A-Z and appends them to dst
// until dst holds length letters, rejecting bytes that would bias the
// distribution.
func appendLetters(dst, src []byte, length int) []byte {
	for _, b := range src {
		if len(dst) == length {
			break
		}
		if b >= maxUnbiasedByte {
			continue
		}
		dst = append(dst, 'A'+b%26)
	}
	return dst
}

// RandomKeyword returns a random A-Z keyword of the given length, suitable as
// a Playfair or Vigenere key. Randomness comes from crypto/rand; the keyword
// is never stored.
func RandomKeyword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("keyword length must be positive, got %d", length)
	}
	letters := make([]byte, 0, length)
	for len(letters) < length {
		buf := make([]byte, length)
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("failed to generate keyword: %w", err)
		}
		letters = appendLetters(letters, buf, length)
	}
	return string(letters), nil
}

// DeriveKeyword derives a deterministic A-Z keyword of the given length from
// a passphrase with PBKDF2-SHA256 over the fixed application salt. The same
// passphrase and length always produce the same keyword.
func DeriveKeyword(passphrase string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("keyword length must be positive, got %d", length)
	}
	if passphrase == "" {
		return "", fmt.Errorf("passphrase must not be empty")
	}
	letters := make([]byte, 0, length)
	for round := 0; len(letters) < length; round++ {
		// Rejection can exhaust a round's output; later rounds extend the
		// stream deterministically by varying the salt.
		salt := fmt.Sprintf("%s/%d", keygenSalt, round)
		raw := pbkdf2.Key([]byte(passphrase), []byte(salt), KeygenIterations, 2*length, sha256.New)
		letters = appendLetters(letters, raw, length)
	}
	return string(letters), nil
}
