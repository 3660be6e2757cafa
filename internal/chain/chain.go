// Package chain owns the append-only block sequence, difficulty
// retargeting and the proof-of-work nonce search.
package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/powsim7000/internal/model"
)

// ErrAttemptsExhausted reports a mining round that hit its attempt cap
// without finding a qualifying nonce.
var ErrAttemptsExhausted = errors.New("mining attempts exhausted")

// Chain is the in-memory block sequence. Mine is the only writer; reads go
// through value-copying accessors, so snapshots may be taken from other
// goroutines while a round is in flight.
type Chain struct {
	mu          sync.RWMutex
	blocks      []model.Block
	target      time.Duration
	maxAttempts uint64
	now         func() time.Time
}

// Option configures a Chain.
type Option func(*Chain)

// WithMaxAttempts caps the nonce search per round. Zero means search
// forever.
func WithMaxAttempts(n uint64) Option {
	return func(c *Chain) { c.maxAttempts = n }
}

// NewChain creates a chain holding only the genesis block (index 0,
// nonce 0, sentinel previous hash).
func NewChain(targetSecondsPerBlock time.Duration, opts ...Option) (*Chain, error) {
	if targetSecondsPerBlock <= 0 {
		return nil, fmt.Errorf("target seconds per block must be positive, got %s", targetSecondsPerBlock)
	}

	c := &Chain{
		target: targetSecondsPerBlock,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.blocks = []model.Block{model.NewBlock(0, 0, genesisPreviousHash, c.now())}

	return c, nil
}

// Height returns the number of committed blocks, genesis included.
func (c *Chain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(len(c.blocks))
}

// LastBlock returns the most recently committed block. The genesis block
// guarantees there always is one.
func (c *Chain) LastBlock() model.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[len(c.blocks)-1]
}

// RequiredDifficulty computes the leading-zero count the next block must
// reach. Below retargetWindow committed blocks it returns the bootstrap
// value; afterwards it reacts to the average of the two most recent
// inter-block gaps: under half the target raises the bar by one, over one
// and a half times the target lowers it by one, floored at zero.
func (c *Chain) RequiredDifficulty() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requiredDifficultyLocked()
}

func (c *Chain) requiredDifficultyLocked() int {
	if len(c.blocks) < retargetWindow {
		return bootstrapDifficulty
	}

	last := c.blocks[len(c.blocks)-1]
	mid := c.blocks[len(c.blocks)-2]
	first := c.blocks[len(c.blocks)-3]
	avg := (last.Timestamp().Sub(mid.Timestamp()) + mid.Timestamp().Sub(first.Timestamp())) / 2

	// Exact integer forms of avg < 0.5*target and avg > 1.5*target.
	switch {
	case 2*avg < c.target:
		return last.LeadingZeros() + 1
	case 2*avg > 3*c.target:
		return max(last.LeadingZeros()-1, 0)
	default:
		return last.LeadingZeros()
	}
}

// Snapshot copies the committed rows, appends the in-flight candidate as a
// trailing row if one is given, and captions the result with the current
// required difficulty. The candidate is not committed.
func (c *Chain) Snapshot(candidate *model.Block) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows := make([]Row, 0, len(c.blocks)+1)
	for i, b := range c.blocks {
		rows = append(rows, Row{Position: uint64(i), Nonce: b.Nonce(), Hash: b.Hash()})
	}
	if candidate != nil {
		rows = append(rows, Row{
			Position: uint64(len(c.blocks)),
			Nonce:    candidate.Nonce(),
			Hash:     candidate.Hash(),
		})
	}

	return Snapshot{Rows: rows, Difficulty: c.requiredDifficultyLocked()}
}

// Mine searches nonces for the next block until one hashes with enough
// leading zeros, reporting every attempt. Each attempt stamps a fresh time,
// so the search duration itself feeds the hash and a given nonce is not
// guaranteed to reproduce the same digest across iterations. The winning
// block is committed and its hash returned.
//
// Cancellation is checked once per nonce; with an attempt cap configured
// the round ends in ErrAttemptsExhausted instead of running unbounded.
func (c *Chain) Mine(ctx context.Context, reporter ProgressReporter) (string, error) {
	difficulty := c.RequiredDifficulty()
	prefix := strings.Repeat("0", difficulty)

	c.mu.RLock()
	index := uint64(len(c.blocks))
	previousHash := c.blocks[len(c.blocks)-1].Hash()
	c.mu.RUnlock()

	for nonce := uint64(0); ; nonce++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := model.NewBlock(index, nonce, previousHash, c.now())
		if reporter != nil {
			reporter.Report(c.Snapshot(&candidate))
		}

		if strings.HasPrefix(candidate.Hash(), prefix) {
			c.mu.Lock()
			c.blocks = append(c.blocks, candidate)
			c.mu.Unlock()
			return candidate.Hash(), nil
		}

		if c.maxAttempts > 0 && nonce+1 >= c.maxAttempts {
			return "", fmt.Errorf("%w: %d nonces tried at difficulty %d", ErrAttemptsExhausted, c.maxAttempts, difficulty)
		}
	}
}
