package chain

import (
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Ref is an immutable, shareable handle to a validated position in the block
// graph. A Ref is only ever produced by applying exactly one block; holders
// never mutate it, new positions get new Refs.
type Ref struct {
	hash   chainhash.Hash
	parent chainhash.Hash
	height uint64
}

// NewRef constructs a reference for a validated block.
func NewRef(hash, parent chainhash.Hash, height uint64) *Ref {
	return &Ref{hash: hash, parent: parent, height: height}
}

// Hash returns the referenced block's hash.
func (r *Ref) Hash() chainhash.Hash { return r.hash }

// Parent returns the hash of the referenced block's parent.
func (r *Ref) Parent() chainhash.Hash { return r.parent }

// Height returns the referenced block's distance from genesis.
func (r *Ref) Height() uint64 { return r.height }

func (r *Ref) String() string {
	return fmt.Sprintf("%s@%d", r.hash, r.height)
}

// Tip is the process-wide slot naming the chain's current best Ref. Loads and
// stores are atomic, so concurrent readers observe either the previous value
// or a fully committed one, never an intermediate state.
type Tip struct {
	ref atomic.Pointer[Ref]
}

// NewTip creates a tip slot holding the given reference.
func NewTip(r *Ref) *Tip {
	t := &Tip{}
	t.ref.Store(r)
	return t
}

// Ref returns the current best reference.
func (t *Tip) Ref() *Ref {
	return t.ref.Load()
}

// Store replaces the current best reference. Only chain selection may call
// this; everyone else goes through the state engine's ProcessNewRef.
func (t *Tip) Store(r *Ref) {
	t.ref.Store(r)
}
