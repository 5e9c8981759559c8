// Package pipeline applies an ordered chain of ciphers to a text buffer,
// running parallelizable stages over contiguous chunks of the text.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/TFMV/cipherchain/pkg/cipher"
	"github.com/rs/zerolog/log"
)

// ErrWaitTimeout is returned when chunk workers fail to finish within the
// configured wait budget. The wait is a single bounded join, never a retry
// loop.
var ErrWaitTimeout = errors.New("pipeline: timed out waiting for chunk workers")

const (
	// DefaultWorkers is the number of chunk workers for parallelizable stages
	DefaultWorkers = 4
	// DefaultChunkThreshold is the minimum text length worth partitioning
	DefaultChunkThreshold = 1024
	// DefaultWaitTimeout bounds the join on chunk workers
	DefaultWaitTimeout = 30 * time.Second
)

// Pipeline holds an ordered cipher chain and its execution configuration.
// The chain order is the encryption order; Run reverses it for decryption.
type Pipeline struct {
	chain          []cipher.Cipher
	workers        int
	chunkThreshold int
	waitTimeout    time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of chunk workers for parallelizable stages.
// Values below 1 are clamped to 1, which disables chunking.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithChunkThreshold sets the minimum text length at which a parallelizable
// stage is partitioned. Zero partitions every non-empty text.
func WithChunkThreshold(n int) Option {
	return func(p *Pipeline) {
		p.chunkThreshold = n
	}
}

// WithWaitTimeout sets the bound on the chunk-worker join.
func WithWaitTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.waitTimeout = d
	}
}

// New constructs a pipeline over chain. The chain is not copied defensively;
// callers hand over ownership for the duration of the run.
func New(chain []cipher.Cipher, opts ...Option) *Pipeline {
	p := &Pipeline{
		chain:          chain,
		workers:        DefaultWorkers,
		chunkThreshold: DefaultChunkThreshold,
		waitTimeout:    DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}
	return p
}

// Run applies every stage of the chain to text and returns the final buffer.
// Encrypt applies stages in chain order; Decrypt applies them in exactly
// reversed order, so a chain that encrypted a text always decrypts it back.
// An empty chain is the identity. On error nothing of the partial result
// escapes.
func (p *Pipeline) Run(ctx context.Context, text string, mode cipher.Mode) (string, error) {
	out := text
	for i := range p.chain {
		stage := p.chain[i]
		if mode == cipher.Decrypt {
			stage = p.chain[len(p.chain)-1-i]
		}

		start := time.Now()
		chunked := p.chunkable(stage, out)
		if chunked {
			var err error
			out, err = p.applyChunked(ctx, stage, out, mode)
			if err != nil {
				return "", fmt.Errorf("stage %d (%s): %w", i+1, stage.Name(), err)
			}
		} else {
			out = stage.Apply(out, mode)
		}

		log.Debug().
			Str("stage", stage.Name()).
			Stringer("mode", mode).
			Int("len", len(out)).
			Bool("chunked", chunked).
			Dur("duration", time.Since(start)).
			Msg("Applied cipher stage")
	}
	return out, nil
}

// chunkable reports whether a stage runs on the partitioned path: the cipher
// must declare itself parallelizable and the text must be long enough to give
// every worker a non-empty chunk.
func (p *Pipeline) chunkable(c cipher.Cipher, text string) bool {
	par, ok := c.(cipher.Parallelizable)
	return ok && par.Parallelizable() &&
		p.workers > 1 &&
		len(text) >= p.chunkThreshold &&
		len(text) >= p.workers
}

// applyChunked splits text into workers contiguous non-overlapping chunks,
// transforms each in its own goroutine, and concatenates the results in
// original index order. Each worker reads only its own slice of the input and
// writes only its own slot of the results, so the output is byte-identical to
// a sequential Apply. The join is raced against ctx and the wait budget.
func (p *Pipeline) applyChunked(ctx context.Context, c cipher.Cipher, text string, mode cipher.Mode) (string, error) {
	size := len(text) / p.workers
	results := make([]string, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		lo := i * size
		hi := lo + size
		if i == p.workers-1 {
			// Last chunk absorbs the remainder.
			hi = len(text)
		}
		wg.Add(1)
		go func(idx int, chunk string) {
			defer wg.Done()
			results[idx] = c.Apply(chunk, mode)
		}(i, text[lo:hi])
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(p.waitTimeout):
		return "", ErrWaitTimeout
	}
	return strings.Join(results, ""), nil
}
