package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"dockeyes/internal/core/animator"
	"dockeyes/internal/core/model"
)

// ErrStopped is returned by Do after the loop has exited.
var ErrStopped = errors.New("scheduler stopped")

// Environment answers the queries the animator needs for each sample.
type Environment interface {
	Trusted() bool
	LocateIcon(ctx context.Context) (model.IconGeometry, error)
	ScreenHeight() (float64, error)
}

// Ticker is the subset of time.Ticker used by the loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates tickers. Tests replace it with manual tickers.
type TickerFactory func(time.Duration) Ticker

// Config contains timing values for the control loop.
type Config struct {
	BlinkInterval   time.Duration
	BlinkStep       time.Duration
	HoverStep       time.Duration
	RefreshInterval time.Duration
	InboxSize       int
	NewTicker       TickerFactory
	Rand            *rand.Rand
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		BlinkInterval:   5 * time.Second,
		BlinkStep:       10 * time.Millisecond,
		HoverStep:       10 * time.Millisecond,
		RefreshInterval: time.Second,
		InboxSize:       64,
	}
}

// Scheduler owns the animator and runs every state transition on a single
// goroutine. Pointer samples, queries and timer ticks are serialised there.
type Scheduler struct {
	animator *animator.Animator
	env      Environment
	config   Config
	logger   *slog.Logger

	inbox  chan func(context.Context)
	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	events  []chan Event
	running bool
	stopped bool

	// loop-owned state
	lastMouse  model.Point
	hasMouse   bool
	trusted    bool
	trustKnown bool
	iconFound  bool
	iconKnown  bool
	blinkStep  Ticker
	hoverStep  Ticker
}

// New creates a scheduler for the given animator.
func New(anim *animator.Animator, env Environment, config Config, logger *slog.Logger) *Scheduler {
	defaults := DefaultConfig()
	if config.BlinkInterval <= 0 {
		config.BlinkInterval = defaults.BlinkInterval
	}
	if config.BlinkStep <= 0 {
		config.BlinkStep = defaults.BlinkStep
	}
	if config.HoverStep <= 0 {
		config.HoverStep = defaults.HoverStep
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = defaults.RefreshInterval
	}
	if config.InboxSize <= 0 {
		config.InboxSize = defaults.InboxSize
	}
	if config.NewTicker == nil {
		config.NewTicker = newTimeTicker
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}

	scheduler := &Scheduler{
		animator: anim,
		env:      env,
		config:   config,
		logger:   logger,
		inbox:    make(chan func(context.Context), config.InboxSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	anim.SetOnModeChange(func(mode animator.FaceMode) {
		scheduler.emit(Event{Type: EventModeChange, Mode: mode, At: time.Now()})
	})
	return scheduler
}

// Subscribe registers a new observer channel.
func (scheduler *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	scheduler.mu.Lock()
	scheduler.events = append(scheduler.events, ch)
	scheduler.mu.Unlock()
	return ch
}

// Start launches the control loop.
func (scheduler *Scheduler) Start(ctx context.Context) {
	scheduler.mu.Lock()
	if scheduler.running || scheduler.stopped {
		scheduler.mu.Unlock()
		return
	}
	scheduler.running = true
	scheduler.mu.Unlock()

	go scheduler.run(ctx)
}

// Stop terminates the loop, waits for it to exit and closes observers.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	if scheduler.stopped {
		scheduler.mu.Unlock()
		return
	}
	scheduler.stopped = true
	wasRunning := scheduler.running
	close(scheduler.stopCh)
	scheduler.mu.Unlock()

	if wasRunning {
		<-scheduler.doneCh
	}

	scheduler.mu.Lock()
	events := scheduler.events
	scheduler.events = nil
	scheduler.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}

// Submit queues a pointer sample in bottom-left screen coordinates.
// Samples are dropped when the inbox is full; the next one supersedes them.
func (scheduler *Scheduler) Submit(mouse model.Point) {
	select {
	case scheduler.inbox <- func(ctx context.Context) { scheduler.handlePointer(ctx, mouse) }:
	default:
		scheduler.logger.Debug("pointer sample dropped", "x", mouse.X, "y", mouse.Y)
	}
}

// BlinkNow starts a blink run unless one is already in flight.
func (scheduler *Scheduler) BlinkNow() error {
	return scheduler.Do(func(anim *animator.Animator) {
		scheduler.startBlink(anim, 0)
	})
}

// Do runs fn on the loop goroutine and waits for it to finish.
// It blocks until Start has been called and must not be called from the loop.
func (scheduler *Scheduler) Do(fn func(*animator.Animator)) error {
	done := make(chan struct{})
	task := func(context.Context) {
		fn(scheduler.animator)
		close(done)
	}
	select {
	case scheduler.inbox <- task:
	case <-scheduler.doneCh:
		return ErrStopped
	case <-scheduler.stopCh:
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-scheduler.doneCh:
		return ErrStopped
	case <-scheduler.stopCh:
		return ErrStopped
	}
}

func (scheduler *Scheduler) run(ctx context.Context) {
	defer close(scheduler.doneCh)

	blinkTrigger := scheduler.config.NewTicker(scheduler.config.BlinkInterval)
	defer blinkTrigger.Stop()
	refresh := scheduler.config.NewTicker(scheduler.config.RefreshInterval)
	defer refresh.Stop()
	defer scheduler.stopRunTickers()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scheduler.stopCh:
			return
		case task := <-scheduler.inbox:
			task(ctx)
		case <-blinkTrigger.C():
			scheduler.startBlink(scheduler.animator, scheduler.config.Rand.Float64())
		case <-refresh.C():
			if scheduler.hasMouse {
				scheduler.handlePointer(ctx, scheduler.lastMouse)
			}
		case <-tickerChan(scheduler.blinkStep):
			if scheduler.animator.TickBlink() == animator.RunDone {
				scheduler.blinkStep = stopTicker(scheduler.blinkStep)
			}
		case <-tickerChan(scheduler.hoverStep):
			if scheduler.animator.TickHoverExit() == animator.RunDone {
				scheduler.hoverStep = stopTicker(scheduler.hoverStep)
			}
		}
	}
}

func (scheduler *Scheduler) handlePointer(ctx context.Context, mouse model.Point) {
	scheduler.lastMouse = mouse
	scheduler.hasMouse = true

	trusted := scheduler.env.Trusted()
	scheduler.setTrusted(trusted)
	if !trusted {
		return
	}

	sample := animator.Sample{Mouse: mouse}
	icon, err := scheduler.env.LocateIcon(ctx)
	if err == nil {
		var screenHeight float64
		screenHeight, err = scheduler.env.ScreenHeight()
		sample.Icon = icon
		sample.ScreenHeight = screenHeight
	}
	sample.IconAvailable = err == nil
	scheduler.setIconFound(err)

	scheduler.animator.HandlePointer(sample)
	scheduler.syncRunTickers()
}

func (scheduler *Scheduler) startBlink(anim *animator.Animator, roll float64) {
	if !anim.MaybeBlink(roll) {
		return
	}
	scheduler.emit(Event{Type: EventBlink, At: time.Now()})
	scheduler.syncRunTickers()
}

// syncRunTickers starts a step ticker for each run that has none.
func (scheduler *Scheduler) syncRunTickers() {
	if scheduler.animator.Blinking() && scheduler.blinkStep == nil {
		scheduler.blinkStep = scheduler.config.NewTicker(scheduler.config.BlinkStep)
	}
	if scheduler.animator.HoverExiting() && scheduler.hoverStep == nil {
		scheduler.hoverStep = scheduler.config.NewTicker(scheduler.config.HoverStep)
	}
}

func (scheduler *Scheduler) stopRunTickers() {
	scheduler.blinkStep = stopTicker(scheduler.blinkStep)
	scheduler.hoverStep = stopTicker(scheduler.hoverStep)
}

func (scheduler *Scheduler) setTrusted(trusted bool) {
	if scheduler.trustKnown && scheduler.trusted == trusted {
		return
	}
	scheduler.trustKnown = true
	scheduler.trusted = trusted
	scheduler.logger.Info("accessibility permission", "trusted", trusted)
	scheduler.emit(Event{Type: EventPermission, Trusted: trusted, At: time.Now()})
}

func (scheduler *Scheduler) setIconFound(err error) {
	found := err == nil
	if scheduler.iconKnown && scheduler.iconFound == found {
		if err != nil {
			scheduler.logger.Debug("icon geometry unavailable", "error", err)
		}
		return
	}
	scheduler.iconKnown = true
	scheduler.iconFound = found
	if found {
		scheduler.logger.Info("dock icon located")
		scheduler.emit(Event{Type: EventIconFound, At: time.Now()})
		return
	}
	scheduler.logger.Warn("dock icon unavailable", "error", err)
	scheduler.emit(Event{Type: EventIconLost, Message: err.Error(), At: time.Now()})
}

func (scheduler *Scheduler) emit(event Event) {
	scheduler.mu.Lock()
	events := append([]chan Event(nil), scheduler.events...)
	scheduler.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

type timeTicker struct {
	ticker *time.Ticker
}

func newTimeTicker(interval time.Duration) Ticker {
	return &timeTicker{ticker: time.NewTicker(interval)}
}

func (ticker *timeTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *timeTicker) Stop() {
	ticker.ticker.Stop()
}

// tickerChan returns nil for a nil ticker so its select case never fires.
func tickerChan(ticker Ticker) <-chan time.Time {
	if ticker == nil {
		return nil
	}
	return ticker.C()
}

func stopTicker(ticker Ticker) Ticker {
	if ticker != nil {
		ticker.Stop()
	}
	return nil
}
