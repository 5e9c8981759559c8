package cipher

import (
	"fmt"
	"strings"
)

// Spec pairs a cipher kind with its key string, in the order the caller
// requested it.
type Spec struct {
	Kind Kind
	Key  string
}

// builder validates a key and constructs a cipher instance for one kind.
type builder func(key string) (Cipher, error)

var registry = map[Kind]builder{}

func register(kind Kind, b builder) {
	registry[kind] = b
}

func init() {
	register(Caesar, func(key string) (Cipher, error) { return NewCaesar(key) })
	register(Playfair, func(key string) (Cipher, error) { return NewPlayfair(key) })
	register(Vigenere, func(key string) (Cipher, error) { return NewVigenere(key) })
}

// New validates key under kind's rule and constructs a cipher instance.
// Construction is the only point where key validity is checked; an instance
// that exists is always valid.
func New(kind Kind, key string) (Cipher, error) {
	b, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	c, err := b(key)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s builder returned no instance", ErrConstruction, kind)
	}
	return c, nil
}

// NewChain constructs one cipher per spec, in request order, failing fast on
// the first invalid key. Duplicate kinds yield independent instances; no
// partial chain is ever returned.
func NewChain(specs []Spec) ([]Cipher, error) {
	chain := make([]Cipher, 0, len(specs))
	for i, s := range specs {
		c, err := New(s.Kind, s.Key)
		if err != nil {
			return nil, fmt.Errorf("cipher %d (%s): %w", i+1, s.Kind, err)
		}
		chain = append(chain, c)
	}
	return chain, nil
}

// ParseChainSpec parses the compact chain syntax used by the CLI:
// comma-separated kind:key items, e.g. "caesar:5,vigenere:LEMON". The kind
// runs to the first colon and the key to the end of the item. An item with no
// colon gets caesar's null key "0" when the kind is caesar; for the keyword
// ciphers the empty key is passed through so validation rejects it with the
// offending kind attached.
func ParseChainSpec(spec string) ([]Spec, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("empty chain spec")
	}

	items := strings.Split(spec, ",")
	specs := make([]Spec, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, fmt.Errorf("empty item in chain spec %q", spec)
		}
		name, key, hasKey := strings.Cut(item, ":")
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !hasKey && kind == Caesar {
			key = "0"
		}
		specs = append(specs, Spec{Kind: kind, Key: key})
	}
	return specs, nil
}
