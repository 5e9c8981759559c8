package cipher

import "errors"

var (
	// ErrInvalidKey is returned when a key fails its kind's validation rule.
	ErrInvalidKey = errors.New("cipher: invalid key")
	// ErrUnknownKind is returned for a cipher name or kind with no registered builder.
	ErrUnknownKind = errors.New("cipher: unknown cipher kind")
	// ErrConstruction is returned when a builder yields no instance despite a valid key.
	ErrConstruction = errors.New("cipher: construction failed")
)
