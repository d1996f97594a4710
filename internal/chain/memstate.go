package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MemState is an in-memory chain-state engine. It tracks validated references
// by hash and applies structural header checks only; ledger-level validation
// belongs to a full node engine. It backs the standalone bootstrap binary and
// the tests.
type MemState struct {
	mu      sync.Mutex
	genesis chainhash.Hash
	refs    map[chainhash.Hash]*Ref
	known   map[chainhash.Hash]struct{}
	blocks  map[chainhash.Hash]*Block
}

// NewMemState creates an engine whose only validated reference is genesis.
func NewMemState(genesis chainhash.Hash) *MemState {
	gref := NewRef(genesis, chainhash.Hash{}, 0)
	return &MemState{
		genesis: genesis,
		refs:    map[chainhash.Hash]*Ref{genesis: gref},
		known:   map[chainhash.Hash]struct{}{genesis: {}},
		blocks:  map[chainhash.Hash]*Block{},
	}
}

// GenesisHash returns the hash of the zero block.
func (s *MemState) GenesisHash() chainhash.Hash {
	return s.genesis
}

// GenesisRef returns the reference of the zero block.
func (s *MemState) GenesisRef() *Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs[s.genesis]
}

// MarkKnown records a header as seen without a validated reference, the shape
// a block takes when it cannot be reconciled with any accepted checkpoint.
func (s *MemState) MarkKnown(hash chainhash.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[hash] = struct{}{}
}

// GetCheckpoints walks the branch back towards genesis, dense near the tip
// and exponentially sparser towards the root.
func (s *MemState) GetCheckpoints(_ context.Context, branch *Ref) ([]Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cps []Checkpoint
	step, skip := uint64(1), uint64(0)
	for r := branch; r != nil; {
		cps = append(cps, Checkpoint{Hash: r.Hash(), Height: r.Height()})
		if r.Height() == 0 {
			break
		}
		if len(cps) >= 8 {
			step *= 2
		}
		next := r
		for skip = 0; skip < step && next != nil && next.Height() > 0; skip++ {
			next = s.refs[next.Parent()]
		}
		r = next
	}
	if len(cps) == 0 || cps[len(cps)-1].Height != 0 {
		cps = append(cps, Checkpoint{Hash: s.genesis, Height: 0})
	}
	return cps, nil
}

// PreCheckHeader classifies a header against the known chain state.
func (s *MemState) PreCheckHeader(_ context.Context, header *wire.BlockHeader, allowMissingParent bool) (PreCheckedHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := header.BlockHash()
	if _, ok := s.known[hash]; ok {
		return PreCheckedHeader{Status: StatusAlreadyPresent, Ref: s.refs[hash]}, nil
	}
	parent, ok := s.refs[header.PrevBlock]
	if !ok {
		if !allowMissingParent {
			return PreCheckedHeader{}, fmt.Errorf("parent %s of header %s not found", header.PrevBlock, hash)
		}
		return PreCheckedHeader{Status: StatusMissingParent}, nil
	}
	return PreCheckedHeader{Status: StatusNew, ParentRef: parent}, nil
}

// PostCheckHeader validates a new header against its parent reference.
func (s *MemState) PostCheckHeader(_ context.Context, header *wire.BlockHeader, parent *Ref, proof ProofCheck) (*ValidatedHeader, error) {
	if header.PrevBlock != parent.Hash() {
		return nil, fmt.Errorf("header %s does not extend %s", header.BlockHash(), parent.Hash())
	}
	if proof == ProofCheckEnabled {
		hash := header.BlockHash()
		target := blockchain.CompactToBig(header.Bits)
		if target.Sign() <= 0 {
			return nil, fmt.Errorf("header %s has invalid difficulty bits %08x", hash, header.Bits)
		}
		if blockchain.HashToBig(&hash).Cmp(target) > 0 {
			return nil, fmt.Errorf("header %s does not meet its declared target", hash)
		}
	}
	return &ValidatedHeader{Header: header, Parent: parent}, nil
}

// ApplyAndStoreBlock durably records a validated block and mints its reference.
func (s *MemState) ApplyAndStoreBlock(_ context.Context, validated *ValidatedHeader, block *Block) (*AppliedBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := block.Hash()
	if validated.Header.BlockHash() != hash {
		return nil, fmt.Errorf("validated header %s does not match block %s", validated.Header.BlockHash(), hash)
	}
	ref := NewRef(hash, validated.Parent.Hash(), validated.Parent.Height()+1)
	s.refs[hash] = ref
	s.known[hash] = struct{}{}
	s.blocks[hash] = block
	return &AppliedBlock{Ref: ref}, nil
}

// ProcessNewRef runs chain selection: the candidate replaces the tip only if
// it names a longer validated branch.
func (s *MemState) ProcessNewRef(_ context.Context, tip *Tip, candidate *Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refs[candidate.Hash()]; !ok {
		return fmt.Errorf("candidate %s is not a validated reference", candidate)
	}
	current := tip.Ref()
	if current == nil || candidate.Height() > current.Height() {
		tip.Store(candidate)
	}
	return nil
}
