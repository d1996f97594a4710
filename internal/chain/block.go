// Package chain holds the block/reference data model shared by the bootstrap
// subsystem and the chain-state engine.
package chain

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Block is one unit of chain history received from a peer. Ownership passes to
// the admission pipeline, which either discards it or hands it to storage.
type Block struct {
	raw *btcutil.Block
}

// NewBlock wraps a decoded wire block.
func NewBlock(msg *wire.MsgBlock) *Block {
	return &Block{raw: btcutil.NewBlock(msg)}
}

// Hash returns the block's header hash.
func (b *Block) Hash() chainhash.Hash {
	return *b.raw.Hash()
}

// PrevHash returns the hash of the parent block.
func (b *Block) PrevHash() chainhash.Hash {
	return b.raw.MsgBlock().Header.PrevBlock
}

// Header returns the block's wire header.
func (b *Block) Header() *wire.BlockHeader {
	return &b.raw.MsgBlock().Header
}

// MsgBlock returns the underlying wire block.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.raw.MsgBlock()
}

// SerializeSize returns the number of bytes the block occupies on the wire.
func (b *Block) SerializeSize() int {
	return b.raw.MsgBlock().SerializeSize()
}

// Description returns a short human-readable summary used in progress reports.
func (b *Block) Description() string {
	header := b.raw.MsgBlock().Header
	return fmt.Sprintf("%s %s", header.Timestamp.UTC().Format(time.RFC3339), b.raw.Hash())
}
