// Package bootstrap implements the catch-up subsystem of the node: it pulls
// missing chain history from a peer, validates it block by block, and commits
// the best validated reference as the new tip before normal peer-to-peer
// operation begins.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
	"github.com/goodnatureofminers/blocksync7000-node/internal/clock"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/cancel"
)

// Bootstrapper orchestrates bootstrap passes against remote peers. The peer
// session, the chain-state engine and the cancellation signal are all
// collaborators handed in by the caller.
type Bootstrapper struct {
	logger      *zap.Logger
	dialer      Dialer
	state       State
	metrics     Metrics
	reportEvery uint64
	now         clock.NowFunc
}

// New builds a Bootstrapper with its dependencies.
func New(dialer Dialer, state State, metrics Metrics, logger *zap.Logger) (*Bootstrapper, error) {
	if dialer == nil {
		return nil, errors.New("bootstrap dialer is required")
	}
	if state == nil {
		return nil, errors.New("bootstrap chain state is required")
	}
	if metrics == nil {
		return nil, errors.New("bootstrap metrics is required")
	}
	return &Bootstrapper{
		logger:      logger.Named("bootstrap"),
		dialer:      dialer,
		state:       state,
		metrics:     metrics,
		reportEvery: defaultReportEvery,
		now:         time.Now,
	}, nil
}

// PeersFromTrustedPeer asks one known peer for the peers it knows about.
// No retries happen at this layer; the caller owns that policy.
func (b *Bootstrapper) PeersFromTrustedPeer(ctx context.Context, peer Peer) ([]Peer, error) {
	b.logger.Info("getting peers from bootstrap peer", zap.String("peer", peer.Addr))

	started := b.now()
	peers, err := b.peersFrom(ctx, peer)
	b.metrics.ObservePeersRequest(err, started)
	return peers, err
}

func (b *Bootstrapper) peersFrom(ctx context.Context, peer Peer) ([]Peer, error) {
	sess, err := b.dialer.Connect(ctx, peer.Addr)
	if err != nil {
		return nil, newError(KindConnect, err)
	}
	defer func() {
		_ = sess.Close()
	}()

	if err := sess.Ready(ctx); err != nil {
		return nil, newError(KindClientNotReady, err)
	}
	addrs, err := sess.Peers(ctx)
	if err != nil {
		return nil, newError(KindPeersNotAvailable, err)
	}

	b.logger.Info("peers known", zap.String("peer", peer.Addr), zap.Int("count", len(addrs)))

	peers := make([]Peer, 0, len(addrs))
	for _, addr := range addrs {
		peers = append(peers, Peer{Addr: addr})
	}
	return peers, nil
}

// FromPeer performs one full bootstrap pass against the given peer. It
// returns nil only once the best obtainable reference, if any, has been
// committed as the new tip. The token is observed during setup and again at
// every block boundary while streaming.
func (b *Bootstrapper) FromPeer(ctx context.Context, peer Peer, tip *chain.Tip, tok *cancel.Token) (err error) {
	b.logger.Debug("connecting to bootstrap peer", zap.String("peer", peer.Addr))

	started := b.now()
	progress := newProgressTracker(b.logger, b.reportEvery, b.now)
	defer func() {
		b.metrics.ObserveRun(err, progress.blocks, started)
	}()

	ctx, cancelSetup := context.WithCancel(ctx)
	defer cancelSetup()

	type setupResult struct {
		sess   Session
		stream BlockStream
		err    error
	}
	setupCh := make(chan setupResult, 1)
	go func() {
		sess, stream, serr := b.setup(ctx, peer, tip)
		setupCh <- setupResult{sess: sess, stream: stream, err: serr}
	}()

	// The whole setup-through-request sequence races the cancellation
	// signal; the signal is not consumed here and stays observable by the
	// streaming phase.
	select {
	case res := <-setupCh:
		if res.err != nil {
			return res.err
		}
		defer func() {
			_ = res.sess.Close()
		}()
		return b.fromStream(ctx, res.stream, tip, tok, progress)
	case <-tok.Done():
		if !tok.Fired() {
			panic("bootstrap: cancellation source dropped without firing")
		}
		// Reap the session the setup goroutine may still produce after
		// its context is torn down.
		go func() {
			if res := <-setupCh; res.sess != nil {
				_ = res.sess.Close()
			}
		}()
		return newError(KindInterrupted, nil)
	}
}

// setup connects, waits for readiness while deriving checkpoints, then issues
// the pull request. Readiness and checkpoint derivation run concurrently and
// both must succeed before the request goes out.
func (b *Bootstrapper) setup(ctx context.Context, peer Peer, tip *chain.Tip) (Session, BlockStream, error) {
	sess, err := b.dialer.Connect(ctx, peer.Addr)
	if err != nil {
		return nil, nil, newError(KindConnect, err)
	}

	readyCh := make(chan error, 1)
	go func() {
		readyCh <- sess.Ready(ctx)
	}()

	checkpoints, cpErr := b.state.GetCheckpoints(ctx, tip.Ref())
	readyErr := <-readyCh

	if readyErr != nil {
		_ = sess.Close()
		return nil, nil, newError(KindClientNotReady, readyErr)
	}
	if cpErr != nil {
		_ = sess.Close()
		return nil, nil, newError(KindGetCheckpointsFailed, cpErr)
	}

	stream, err := sess.PullBlocksToTip(ctx, checkpoints)
	if err != nil {
		_ = sess.Close()
		return nil, nil, newError(KindPullRequestFailed, err)
	}
	return sess, stream, nil
}
