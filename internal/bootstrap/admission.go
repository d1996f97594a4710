package bootstrap

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/cancel"
)

// fromStream drains the merged block sequence in order, admitting each block
// and remembering the last successfully applied reference. On a clean end the
// reference is committed via chain selection; on any halt the commit is still
// attempted best-effort so no validated progress is lost.
func (b *Bootstrapper) fromStream(ctx context.Context, stream BlockStream, tip *chain.Tip, tok *cancel.Token, progress *progressTracker) error {
	genesis := b.state.GenesisHash()
	merger := newStreamMerger(ctx, stream, tok)

	var lastRef *chain.Ref
	for {
		block, err := merger.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return b.halt(ctx, tip, lastRef, err)
		}

		// The zero block is never re-applied, even if the peer sends it.
		if block.Hash() == genesis {
			continue
		}
		progress.observe(block)

		ref, err := b.handleBlock(ctx, block)
		if err != nil {
			return b.halt(ctx, tip, lastRef, err)
		}
		lastRef = ref
	}

	if lastRef == nil {
		b.logger.Info("no new blocks in bootstrap stream")
		return nil
	}
	if err := b.state.ProcessNewRef(ctx, tip, lastRef); err != nil {
		return newError(KindChainSelectionFailed, err)
	}
	return nil
}

// halt commits whatever was already validated before surfacing cause. A
// failure of the compensating commit is logged, never returned; the original
// error stays authoritative.
func (b *Bootstrapper) halt(ctx context.Context, tip *chain.Tip, lastRef *chain.Ref, cause error) error {
	if lastRef != nil {
		if err := b.state.ProcessNewRef(ctx, tip, lastRef); err != nil {
			b.logger.Warn("couldn't gracefully exit from failed netboot", zap.Error(err))
		}
	}
	return cause
}

// handleBlock classifies one block against chain state and drives it through
// validation and application, returning the reference to remember.
func (b *Bootstrapper) handleBlock(ctx context.Context, block *chain.Block) (*chain.Ref, error) {
	started := b.now()
	header := block.Header()

	pre, err := b.state.PreCheckHeader(ctx, header, true)
	if err != nil {
		return nil, newError(KindHeaderCheckFailed, err)
	}

	switch pre.Status {
	case chain.StatusAlreadyPresent:
		if pre.Ref == nil {
			return nil, newBlockError(KindBlockNotOnBranch, block.Hash())
		}
		return pre.Ref, nil
	case chain.StatusMissingParent:
		return nil, newBlockError(KindBlockMissingParent, block.Hash())
	}

	validated, err := b.state.PostCheckHeader(ctx, header, pre.ParentRef, chain.ProofCheckEnabled)
	if err != nil {
		return nil, newError(KindHeaderCheckFailed, err)
	}
	b.logger.Debug("validated block",
		zap.Stringer("hash", block.Hash()),
		zap.Time("block_time", header.Timestamp),
	)

	applied, err := b.state.ApplyAndStoreBlock(ctx, validated, block)
	b.metrics.ObserveBlockApplied(err, block.SerializeSize(), started)
	if err != nil {
		return nil, newError(KindApplyBlockFailed, err)
	}
	return applied.Ref, nil
}
