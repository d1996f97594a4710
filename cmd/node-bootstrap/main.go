package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocksync7000-node/internal/bootstrap"
	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
	"github.com/goodnatureofminers/blocksync7000-node/internal/clock"
	"github.com/goodnatureofminers/blocksync7000-node/internal/metrics"
	"github.com/goodnatureofminers/blocksync7000-node/internal/peer"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/cancel"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/workerpool"
)

type config struct {
	Peers            []string      `long:"peer" env:"NODE_BOOTSTRAP_PEERS" env-delim:"," description:"trusted peer address" required:"true"`
	Network          string        `long:"network" env:"NODE_BOOTSTRAP_NETWORK" description:"network name" default:"mainnet"`
	GenesisHash      string        `long:"genesis-hash" env:"NODE_BOOTSTRAP_GENESIS_HASH" description:"hash of the zero block" required:"true"`
	MetricsAddr      string        `long:"metrics-addr" env:"NODE_BOOTSTRAP_METRICS_ADDR" description:"prometheus endpoint" default:":9100"`
	DiscoveryWorkers int           `long:"discovery-workers" env:"NODE_BOOTSTRAP_DISCOVERY_WORKERS" description:"concurrent peer-list queries" default:"4"`
	DiscoveryRPS     int           `long:"discovery-rps" env:"NODE_BOOTSTRAP_DISCOVERY_RPS" description:"peer-list queries per second" default:"2"`
	RetryDelay       time.Duration `long:"retry-delay" env:"NODE_BOOTSTRAP_RETRY_DELAY" description:"pause between bootstrap attempts" default:"5s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("node bootstrap failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	genesis, err := chainhash.NewHashFromStr(cfg.GenesisHash)
	if err != nil {
		return fmt.Errorf("parse genesis hash: %w", err)
	}

	state := chain.NewMemState(*genesis)
	tip := chain.NewTip(state.GenesisRef())

	bs, err := bootstrap.New(
		peer.NewDialer(logger),
		state,
		metrics.NewBootstrap(cfg.Network),
		logger,
	)
	if err != nil {
		return err
	}

	serveMetrics(ctx, cfg.MetricsAddr, logger)

	// The shutdown signal fans out to every bootstrap phase through one
	// broadcast token.
	src := cancel.NewSource()
	go func() {
		<-ctx.Done()
		src.Fire()
	}()

	candidates := discoverPeers(ctx, cfg, bs, logger)

	var lastErr error
	for _, p := range candidates {
		err := bs.FromPeer(ctx, p, tip, src.Token())
		if err == nil {
			logger.Info("bootstrap complete", zap.Stringer("tip", tip.Ref()))
			return nil
		}
		if bootstrap.KindOf(err) == bootstrap.KindInterrupted {
			return err
		}
		lastErr = err
		logger.Warn("bootstrap attempt failed", zap.String("peer", p.Addr), zap.Error(err))
		if err := clock.SleepWithContext(ctx, cfg.RetryDelay); err != nil {
			return err
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no bootstrap peers available")
	}
	return lastErr
}

// discoverPeers queries the trusted peers for their peer lists and returns
// the trusted peers followed by the newly discovered ones, deduplicated.
func discoverPeers(ctx context.Context, cfg config, bs *bootstrap.Bootstrapper, logger *zap.Logger) []bootstrap.Peer {
	rl := ratelimit.New(cfg.DiscoveryRPS)

	var mu sync.Mutex
	seen := make(map[string]struct{}, len(cfg.Peers))
	candidates := make([]bootstrap.Peer, 0, len(cfg.Peers))
	for _, addr := range cfg.Peers {
		seen[addr] = struct{}{}
		candidates = append(candidates, bootstrap.Peer{Addr: addr})
	}

	trusted := append([]bootstrap.Peer(nil), candidates...)
	err := workerpool.Process(ctx, cfg.DiscoveryWorkers, trusted, func(ctx context.Context, p bootstrap.Peer) error {
		rl.Take()
		peers, err := bs.PeersFromTrustedPeer(ctx, p)
		if err != nil {
			// Discovery is best-effort; a silent trusted peer is not fatal.
			logger.Warn("peer discovery failed", zap.String("peer", p.Addr), zap.Error(err))
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		for _, discovered := range peers {
			if _, ok := seen[discovered.Addr]; ok {
				continue
			}
			seen[discovered.Addr] = struct{}{}
			candidates = append(candidates, discovered)
		}
		return nil
	})
	if err != nil {
		logger.Warn("peer discovery aborted", zap.Error(err))
	}

	logger.Info("bootstrap candidates assembled", zap.Int("count", len(candidates)))
	return candidates
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}
