package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Checkpoint names a point the local chain already has, letting a peer send
// only the blocks beyond it.
type Checkpoint struct {
	Hash   chainhash.Hash
	Height uint64
}

// ProofCheck selects whether the post-check verifies the header's proof.
type ProofCheck int

const (
	ProofCheckEnabled ProofCheck = iota
	ProofCheckDisabled
)

// AdmissionStatus classifies a header against known chain state.
type AdmissionStatus int

const (
	// StatusAlreadyPresent marks a header that is already known. Whether it
	// lies on a validated branch is told by PreCheckedHeader.Ref.
	StatusAlreadyPresent AdmissionStatus = iota
	// StatusMissingParent marks a header whose parent is unknown locally.
	StatusMissingParent
	// StatusNew marks a header that is new and whose parent reference is
	// available for validation.
	StatusNew
)

func (s AdmissionStatus) String() string {
	switch s {
	case StatusAlreadyPresent:
		return "already-present"
	case StatusMissingParent:
		return "missing-parent"
	case StatusNew:
		return "new"
	default:
		return "unknown"
	}
}

// PreCheckedHeader is the outcome of the cheap admission pre-check.
type PreCheckedHeader struct {
	Status AdmissionStatus
	// Ref carries the cached reference of an already-present header. It is
	// nil when the header is known but not reachable from any accepted
	// checkpoint.
	Ref *Ref
	// ParentRef carries the parent's reference for a new header.
	ParentRef *Ref
}

// ValidatedHeader is a header that passed the expensive post-check against
// its parent. Only validated headers may be applied to storage.
type ValidatedHeader struct {
	Header *wire.BlockHeader
	Parent *Ref
}

// AppliedBlock is the durable result of storing a validated block.
type AppliedBlock struct {
	Ref *Ref
}
