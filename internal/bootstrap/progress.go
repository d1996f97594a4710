package bootstrap

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
	"github.com/goodnatureofminers/blocksync7000-node/internal/clock"
	"github.com/goodnatureofminers/blocksync7000-node/pkg/safe"
)

// defaultReportEvery is how many accepted blocks pass between rate reports.
const defaultReportEvery = 2500

// progressTracker accumulates byte/block counters for one bootstrap run and
// periodically logs a throughput summary. It is owned by the single consuming
// loop and is not safe for sharing.
type progressTracker struct {
	logger      *zap.Logger
	now         clock.NowFunc
	reportEvery uint64

	lastReported time.Time
	lastBytes    uint64
	bytes        uint64
	blocks       uint64
	lastDesc     string
}

func newProgressTracker(logger *zap.Logger, reportEvery uint64, now clock.NowFunc) *progressTracker {
	if reportEvery == 0 {
		reportEvery = defaultReportEvery
	}
	if now == nil {
		now = time.Now
	}
	return &progressTracker{
		logger:       logger,
		now:          now,
		reportEvery:  reportEvery,
		lastReported: now(),
	}
}

// observe accounts one accepted block and emits a report on cadence.
func (p *progressTracker) observe(b *chain.Block) {
	size, err := safe.Uint64(b.SerializeSize())
	if err != nil {
		p.logger.Warn("block size not accountable", zap.Error(err))
		size = 0
	}
	p.bytes += size
	p.blocks++
	p.lastDesc = b.Description()

	if p.blocks%p.reportEvery == 0 {
		p.report()
	}
}

// report logs bytes received since the previous report together with a
// wall-clock throughput. Calling it before any block was observed is a
// caller bug.
func (p *progressTracker) report() {
	if p.lastDesc == "" {
		panic("bootstrap: progress report requested before any block was accepted")
	}

	current := p.now()
	elapsed := current.Sub(p.lastReported)
	bytesDiff := p.bytes - p.lastBytes

	rate := "N/A"
	if elapsed > 0 {
		rate = formatSize(float64(bytesDiff)/elapsed.Seconds()) + "/s"
	}

	p.lastReported = current
	p.lastBytes = p.bytes

	p.logger.Info("receiving from network",
		zap.String("bytes", formatSize(float64(bytesDiff))),
		zap.String("rate", rate),
		zap.Uint64("blocks", p.blocks),
		zap.String("block", p.lastDesc),
	)
}

// formatSize renders a byte magnitude with a unit suffix. The thresholds are
// decimal while the kb/mb divisors are 1024-based; downstream displays depend
// on these exact numbers.
func formatSize(n float64) string {
	switch {
	case n > 1_000_000:
		return fmt.Sprintf("%.2fmb", n/(1024*1024))
	case n > 1_000:
		return fmt.Sprintf("%.2fkb", n/1024)
	default:
		return fmt.Sprintf("%.2fb", n)
	}
}
