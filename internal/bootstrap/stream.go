package bootstrap

import (
	"context"
	"errors"
	"io"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/cancel"
)

// streamItem is one outcome of pulling the block stream.
type streamItem struct {
	block *chain.Block
	err   error
}

// streamMerger folds the block stream and the cancellation token into a
// single sequence. The token is checked before every pull, so cancellation
// preempts the stream at any block boundary but never mid-block. Once the
// token fires the merger is terminal: every further Next yields Interrupted
// and the stream is left alone.
type streamMerger struct {
	items       <-chan streamItem
	tok         *cancel.Token
	interrupted bool
}

func newStreamMerger(ctx context.Context, stream BlockStream, tok *cancel.Token) *streamMerger {
	items := make(chan streamItem)
	go func() {
		defer close(items)
		for {
			block, err := stream.Next(ctx)
			select {
			case items <- streamItem{block: block, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return &streamMerger{items: items, tok: tok}
}

// Next yields the next block, io.EOF on stream exhaustion, or an Interrupted
// error once the cancellation token has fired.
func (m *streamMerger) Next() (*chain.Block, error) {
	if m.interrupted {
		return nil, newError(KindInterrupted, nil)
	}

	// Cancellation has priority: never pull the stream once the token fired.
	select {
	case <-m.tok.Done():
		return nil, m.interrupt()
	default:
	}

	select {
	case <-m.tok.Done():
		return nil, m.interrupt()
	case item := <-m.items:
		if item.err != nil {
			if errors.Is(item.err, io.EOF) {
				return nil, io.EOF
			}
			return nil, newError(KindPullStreamFailed, item.err)
		}
		return item.block, nil
	}
}

func (m *streamMerger) interrupt() error {
	if !m.tok.Fired() {
		panic("bootstrap: cancellation source dropped without firing")
	}
	m.interrupted = true
	return newError(KindInterrupted, nil)
}
