package bootstrap

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Peer describes a remote node the bootstrap can talk to.
type Peer struct {
	Addr string
}

type (
	// Dialer opens sessions to remote peers.
	Dialer interface {
		Connect(ctx context.Context, addr string) (Session, error)
	}

	// Session is an established connection to one peer.
	Session interface {
		// Ready blocks until the session is usable or reports why not.
		Ready(ctx context.Context) error
		// Peers returns the addresses the remote peer knows about.
		Peers(ctx context.Context) ([]string, error)
		// PullBlocksToTip asks the peer to stream every block between the
		// given checkpoints and its current tip.
		PullBlocksToTip(ctx context.Context, checkpoints []chain.Checkpoint) (BlockStream, error)
		Close() error
	}

	// BlockStream yields blocks in peer-determined order. Next returns io.EOF
	// once the stream is exhausted.
	BlockStream interface {
		Next(ctx context.Context) (*chain.Block, error)
	}

	// State is the chain storage/validation engine collaborator.
	State interface {
		GenesisHash() chainhash.Hash
		GetCheckpoints(ctx context.Context, branch *chain.Ref) ([]chain.Checkpoint, error)
		PreCheckHeader(ctx context.Context, header *wire.BlockHeader, allowMissingParent bool) (chain.PreCheckedHeader, error)
		PostCheckHeader(ctx context.Context, header *wire.BlockHeader, parent *chain.Ref, proof chain.ProofCheck) (*chain.ValidatedHeader, error)
		ApplyAndStoreBlock(ctx context.Context, validated *chain.ValidatedHeader, block *chain.Block) (*chain.AppliedBlock, error)
		ProcessNewRef(ctx context.Context, tip *chain.Tip, candidate *chain.Ref) error
	}

	// Metrics records bootstrap observations.
	Metrics interface {
		ObserveRun(err error, blocks uint64, started time.Time)
		ObserveBlockApplied(err error, sizeBytes int, started time.Time)
		ObservePeersRequest(err error, started time.Time)
	}
)
