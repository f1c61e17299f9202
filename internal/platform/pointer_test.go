package platform

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dockeyes/internal/core/model"
)

type scriptedSource struct {
	mu     sync.Mutex
	points []model.Point
	errs   []error
	calls  int
}

func (source *scriptedSource) PointerLocation() (model.Point, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	index := source.calls
	source.calls++
	if index < len(source.errs) && source.errs[index] != nil {
		return model.Point{}, source.errs[index]
	}
	if index >= len(source.points) {
		return source.points[len(source.points)-1], nil
	}
	return source.points[index], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPointerSamplerEmitsOnlyMovements(t *testing.T) {
	source := &scriptedSource{
		points: []model.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 4}},
	}
	sampler := NewPointerSampler(source, time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emitted := make(chan model.Point, 16)
	done := make(chan error, 1)
	go func() {
		done <- sampler.Run(ctx, func(point model.Point) { emitted <- point })
	}()

	want := []model.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 4}}
	for _, expected := range want {
		select {
		case got := <-emitted:
			if got != expected {
				t.Fatalf("emitted %v, want %v", got, expected)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", expected)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	select {
	case extra := <-emitted:
		t.Fatalf("unexpected extra sample %v", extra)
	default:
	}
}

func TestPointerSamplerSkipsTransientErrors(t *testing.T) {
	source := &scriptedSource{
		points: []model.Point{{}, {}, {X: 5, Y: 6}},
		errs:   []error{errors.New("busy"), errors.New("busy")},
	}
	sampler := NewPointerSampler(source, time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emitted := make(chan model.Point, 16)
	go func() {
		_ = sampler.Run(ctx, func(point model.Point) { emitted <- point })
	}()

	select {
	case got := <-emitted:
		if got != (model.Point{X: 5, Y: 6}) {
			t.Fatalf("emitted %v, want (5,6)", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sample after errors")
	}
}

func TestPointerSamplerStopsWhenUnsupported(t *testing.T) {
	source := &scriptedSource{
		points: []model.Point{{}},
		errs:   []error{ErrUnsupported},
	}
	sampler := NewPointerSampler(source, time.Millisecond, discardLogger())

	err := sampler.Run(context.Background(), func(model.Point) {
		t.Fatal("no samples expected")
	})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Run = %v, want ErrUnsupported", err)
	}
}
