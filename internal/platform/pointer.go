package platform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dockeyes/internal/core/model"
)

// PointerSource reports the global pointer location.
type PointerSource interface {
	PointerLocation() (model.Point, error)
}

// PointerSampler polls a PointerSource and forwards movements.
// It stands in for global mouse-moved monitors, which need a native event tap.
type PointerSampler struct {
	source   PointerSource
	interval time.Duration
	logger   *slog.Logger
}

// NewPointerSampler creates a sampler. Non-positive intervals default to 16ms.
func NewPointerSampler(source PointerSource, interval time.Duration, logger *slog.Logger) *PointerSampler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PointerSampler{source: source, interval: interval, logger: logger}
}

// Run polls until ctx is cancelled, calling emit whenever the pointer moves.
// It returns ErrUnsupported immediately if the platform cannot report the pointer.
func (sampler *PointerSampler) Run(ctx context.Context, emit func(model.Point)) error {
	ticker := time.NewTicker(sampler.interval)
	defer ticker.Stop()

	var last model.Point
	var seen bool
	var failing bool
	for {
		point, err := sampler.source.PointerLocation()
		switch {
		case errors.Is(err, ErrUnsupported):
			return err
		case err != nil:
			if !failing {
				sampler.logger.Warn("pointer location", "error", err)
				failing = true
			}
		default:
			failing = false
			if !seen || point != last {
				last = point
				seen = true
				emit(point)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
