// Package model defines the block value type shared across the miner.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Block is one entry of the chain, committed or still a candidate. All
// fields are set at construction and never change, so Hash is stable for
// the block's lifetime.
type Block struct {
	index        uint64
	nonce        uint64
	previousHash string
	timestamp    time.Time
}

// NewBlock constructs a block stamped with the given time. Arguments are
// taken as-is; the caller decides what a valid previous hash looks like.
func NewBlock(index, nonce uint64, previousHash string, timestamp time.Time) Block {
	return Block{
		index:        index,
		nonce:        nonce,
		previousHash: previousHash,
		timestamp:    timestamp,
	}
}

// Index returns the block's position in the chain.
func (b Block) Index() uint64 { return b.index }

// Nonce returns the proof-of-work nonce.
func (b Block) Nonce() uint64 { return b.nonce }

// PreviousHash returns the hash of the preceding block.
func (b Block) PreviousHash() string { return b.previousHash }

// Timestamp returns the construction time.
func (b Block) Timestamp() time.Time { return b.timestamp }

// Hash returns the lowercase hex SHA-256 digest of the block's canonical
// text: index, timestamp (nanosecond unix time), nonce and previous hash
// concatenated in that order.
func (b Block) Hash() string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatUint(b.index, 10)))
	h.Write([]byte(strconv.FormatInt(b.timestamp.UnixNano(), 10)))
	h.Write([]byte(strconv.FormatUint(b.nonce, 10)))
	h.Write([]byte(b.previousHash))
	return hex.EncodeToString(h.Sum(nil))
}

// LeadingZeros counts the consecutive '0' characters at the start of Hash.
// This is the difficulty the block actually achieved.
func (b Block) LeadingZeros() int {
	hash := b.Hash()
	count := 0
	for count < len(hash) && hash[count] == '0' {
		count++
	}
	return count
}
