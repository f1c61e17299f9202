package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dockeyes/internal/core/scheduler"
	"dockeyes/internal/platform"
)

// samplerRunner owns the pointer polling goroutine and restarts it when
// the poll interval changes.
type samplerRunner struct {
	ctx    context.Context
	source platform.PointerSource
	eyes   *scheduler.Scheduler
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func newSamplerRunner(ctx context.Context, source platform.PointerSource, eyes *scheduler.Scheduler, logger *slog.Logger) *samplerRunner {
	return &samplerRunner{ctx: ctx, source: source, eyes: eyes, logger: logger}
}

func (runner *samplerRunner) restart(interval time.Duration) {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	if runner.cancel != nil {
		runner.cancel()
	}
	ctx, cancel := context.WithCancel(runner.ctx)
	runner.cancel = cancel

	sampler := platform.NewPointerSampler(runner.source, interval, runner.logger)
	runner.logger.Debug("pointer sampler started", "interval", interval)
	go func() {
		err := sampler.Run(ctx, runner.eyes.Submit)
		if errors.Is(err, platform.ErrUnsupported) {
			runner.logger.Warn("pointer tracking unavailable", "error", err)
		}
	}()
}
