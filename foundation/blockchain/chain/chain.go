// Package chain implements an in memory ledger of blocks where every block
// stores the fingerprint of the block before it.
package chain

import (
	"errors"
	"fmt"
	"strings"
)

// Set of errors returned by Verify and Block.
var (
	ErrBrokenLink         = errors.New("back reference does not match previous block")
	ErrMissingPredecessor = errors.New("previous block is not in the chain")
	ErrBlockNotFound      = errors.New("block not found")
)

// Option represents a function that configures a chain.
type Option func(c *Chain)

// WithEvHandler sets the function used to report what the chain is doing.
func WithEvHandler(evHandler func(v string, args ...any)) Option {
	return func(c *Chain) {
		if evHandler != nil {
			c.evHandler = evHandler
		}
	}
}

// =============================================================================

// Chain manages an append only sequence of blocks. A Chain is not safe for
// concurrent use.
type Chain struct {
	blocks    []Block
	evHandler func(v string, args ...any)
}

// New constructs an empty chain.
func New(opts ...Option) *Chain {
	c := Chain{
		evHandler: func(v string, args ...any) {},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// FromBlocks constructs a chain from an existing sequence of blocks. No
// checks are performed, call Verify to know if the sequence is linked.
func FromBlocks(blocks []Block, opts ...Option) *Chain {
	c := New(opts...)
	c.blocks = make([]Block, len(blocks))
	copy(c.blocks, blocks)

	return c
}

// Insert appends a new block holding the payload. The first block inserted
// is the genesis block with a zero back reference.
func (c *Chain) Insert(payload string) {
	if len(c.blocks) == 0 {
		c.blocks = append(c.blocks, NewBlock(0, payload, ZeroFingerprint))
		c.evHandler("chain: Insert: blk[0]: genesis")
		return
	}

	prevBlock := c.blocks[len(c.blocks)-1]
	backRef := prevBlock.Fingerprint()
	nb := NewBlock(uint64(len(c.blocks)), payload, backRef)
	c.blocks = append(c.blocks, nb)

	c.evHandler("chain: Insert: blk[%d]: backRef[%s]", nb.index, backRef)
}

// Validate reports whether every block references the fingerprint of the
// block before it. An empty chain is valid.
func (c *Chain) Validate() bool {
	return c.Verify() == nil
}

// Verify walks the chain and returns an error describing the first block
// whose back reference doesn't match its predecessor. Fingerprints are
// recomputed on every call.
func (c *Chain) Verify() error {
	for _, b := range c.blocks {
		if b.index == 0 {
			continue
		}

		prev := b.index - 1
		if prev >= uint64(len(c.blocks)) {
			c.evHandler("chain: Verify: blk[%d]: check: previous block exists: FAILED", b.index)
			return fmt.Errorf("block %d: previous block %d: %w", b.index, prev, ErrMissingPredecessor)
		}

		exp := c.blocks[prev].Fingerprint()
		if b.backRef != exp {
			c.evHandler("chain: Verify: blk[%d]: check: back reference matches: FAILED", b.index)
			return fmt.Errorf("block %d: got %s, exp %s: %w", b.index, b.backRef, exp, ErrBrokenLink)
		}
	}

	c.evHandler("chain: Verify: blocks[%d]: valid", len(c.blocks))

	return nil
}

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Block returns the block at the specified position.
func (c *Chain) Block(i int) (Block, error) {
	if i < 0 || i >= len(c.blocks) {
		return Block{}, fmt.Errorf("position %d of %d: %w", i, len(c.blocks), ErrBlockNotFound)
	}

	return c.blocks[i], nil
}

// Latest returns the last block in the chain. The boolean is false when the
// chain is empty.
func (c *Chain) Latest() (Block, bool) {
	if len(c.blocks) == 0 {
		return Block{}, false
	}

	return c.blocks[len(c.blocks)-1], true
}

// Blocks returns a copy of the blocks in chain order.
func (c *Chain) Blocks() []Block {
	blocks := make([]Block, len(c.blocks))
	copy(blocks, c.blocks)

	return blocks
}

// Render returns every block's text form in chain order.
func (c *Chain) Render() string {
	var b strings.Builder
	for _, blk := range c.blocks {
		b.WriteString(blk.String())
	}

	return b.String()
}

// String implements the fmt.Stringer interface.
func (c *Chain) String() string {
	return c.Render()
}
