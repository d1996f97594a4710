package bootstrap

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Kind identifies which stage of the bootstrap pipeline failed. The set is
// closed: every error surfaced by this package carries exactly one Kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnect
	KindClientNotReady
	KindPeersNotAvailable
	KindPullRequestFailed
	KindPullStreamFailed
	KindHeaderCheckFailed
	KindBlockNotOnBranch
	KindBlockMissingParent
	KindGetCheckpointsFailed
	KindApplyBlockFailed
	KindChainSelectionFailed
	KindInterrupted
)

func (k Kind) String() string {
	switch k {
	case KindConnect:
		return "connect"
	case KindClientNotReady:
		return "client-not-ready"
	case KindPeersNotAvailable:
		return "peers-not-available"
	case KindPullRequestFailed:
		return "pull-request-failed"
	case KindPullStreamFailed:
		return "pull-stream-failed"
	case KindHeaderCheckFailed:
		return "header-check-failed"
	case KindBlockNotOnBranch:
		return "block-not-on-branch"
	case KindBlockMissingParent:
		return "block-missing-parent"
	case KindGetCheckpointsFailed:
		return "get-checkpoints-failed"
	case KindApplyBlockFailed:
		return "apply-block-failed"
	case KindChainSelectionFailed:
		return "chain-selection-failed"
	case KindInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the bootstrap subsystem. It
// wraps the originating collaborator error without leaking its type into the
// caller's control flow.
type Error struct {
	kind  Kind
	hash  chainhash.Hash
	cause error
}

func newError(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func newBlockError(kind Kind, hash chainhash.Hash) *Error {
	return &Error{kind: kind, hash: hash}
}

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

// BlockHash returns the offending block's hash for the block-not-on-branch
// and block-missing-parent kinds, and the zero hash otherwise.
func (e *Error) BlockHash() chainhash.Hash { return e.hash }

func (e *Error) Error() string {
	switch e.kind {
	case KindConnect:
		return wrapMsg("failed to connect to bootstrap peer", e.cause)
	case KindClientNotReady:
		return wrapMsg("connection broken", e.cause)
	case KindPeersNotAvailable:
		return wrapMsg("peers not available", e.cause)
	case KindPullRequestFailed:
		return wrapMsg("bootstrap pull request failed", e.cause)
	case KindPullStreamFailed:
		return wrapMsg("bootstrap pull stream failed", e.cause)
	case KindHeaderCheckFailed:
		return wrapMsg("block header check failed", e.cause)
	case KindBlockNotOnBranch:
		return fmt.Sprintf("received block %s is already present, but does not descend from any of the checkpoints", e.hash)
	case KindBlockMissingParent:
		return fmt.Sprintf("received block %s is not connected to the block chain", e.hash)
	case KindGetCheckpointsFailed:
		return wrapMsg("failed to fetch checkpoints from storage", e.cause)
	case KindApplyBlockFailed:
		return wrapMsg("failed to apply block to the blockchain", e.cause)
	case KindChainSelectionFailed:
		return wrapMsg("failed to select the new tip", e.cause)
	case KindInterrupted:
		return "the bootstrap process was interrupted"
	default:
		return wrapMsg("bootstrap failed", e.cause)
	}
}

func wrapMsg(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + ": " + cause.Error()
}

// Unwrap exposes the collaborator error for errors.Is/As inspection.
func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the failure kind of err, or KindUnknown for errors that did
// not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}
