package render

import (
	"log/slog"

	"dockeyes/internal/core/animator"

	"fyne.io/fyne/v2"
)

// Sink receives every composed frame.
type Sink interface {
	ShowFrame(fyne.Resource)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(fyne.Resource)

// ShowFrame calls the underlying function.
func (fn SinkFunc) ShowFrame(resource fyne.Resource) {
	fn(resource)
}

// Presenter turns animator render requests into frames for all sinks.
// Consecutive identical frames are dropped.
type Presenter struct {
	composer *Composer
	logger   *slog.Logger
	sinks    []Sink
	last     string
}

// NewPresenter creates a presenter for the given sinks.
func NewPresenter(composer *Composer, logger *slog.Logger, sinks ...Sink) *Presenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Presenter{
		composer: composer,
		logger:   logger,
		sinks:    sinks,
	}
}

// AddSink registers another frame receiver.
func (presenter *Presenter) AddSink(sink Sink) {
	presenter.sinks = append(presenter.sinks, sink)
}

// Render implements animator.Renderer.
func (presenter *Presenter) Render(frame animator.Frame) {
	name := presenter.composer.resourceName(frame)
	if name == presenter.last {
		return
	}

	resource, err := presenter.composer.Resource(frame)
	if err != nil {
		presenter.logger.Warn("render frame", "error", err)
		return
	}
	presenter.last = name

	for _, sink := range presenter.sinks {
		sink.ShowFrame(resource)
	}
}
