package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
)

type StatsSource interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}

// StatsPoller refreshes the dashboard counters on a fixed interval. This is
// the one collection the console polls; lead data refreshes only on mount
// and after explicit actions.
type StatsPoller struct {
	src          StatsSource
	tickInterval time.Duration
	log          *zap.Logger

	mu     sync.RWMutex
	latest *entity.Stats
}

func NewStatsPoller(src StatsSource, interval time.Duration, log *zap.Logger) *StatsPoller {
	return &StatsPoller{
		src:          src,
		tickInterval: interval,
		log:          log,
	}
}

func (p *StatsPoller) Start(ctx context.Context) {
	p.log.Info("stats poller started", zap.Duration("interval", p.tickInterval))

	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("stats poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *StatsPoller) poll(ctx context.Context) {
	stats, err := p.src.GetStats(ctx)
	if err != nil {
		// Keep serving the previous counters; badges go stale, not blank.
		p.log.Warn("stats poll failed", zap.Error(err))
		return
	}

	p.mu.Lock()
	p.latest = stats
	p.mu.Unlock()
}

// Latest returns the last successful poll, or nil before the first one.
func (p *StatsPoller) Latest() *entity.Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}
