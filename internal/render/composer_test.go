package render

import (
	"image"
	"image/color"
	"testing"

	"dockeyes/internal/core/animator"
	"dockeyes/internal/core/model"

	"fyne.io/fyne/v2"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func solid(width, height int, fill color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	composer, err := NewComposer(solid(128, 128, red), solid(128, 128, blue), solid(52, 28, green))
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return composer
}

func TestNewComposerRejectsMismatchedFaces(t *testing.T) {
	if _, err := NewComposer(solid(128, 128, red), solid(64, 64, blue), solid(52, 28, green)); err == nil {
		t.Fatal("expected error for mismatched face sizes")
	}
	if _, err := NewComposer(nil, solid(128, 128, blue), solid(52, 28, green)); err == nil {
		t.Fatal("expected error for missing sprite")
	}
}

func TestComposeBaseFrameDrawsEyes(t *testing.T) {
	composer := newTestComposer(t)
	frame := animator.Frame{
		Mode:      animator.FaceBase,
		EyeOrigin: model.Point{X: 38, Y: 75},
		EyeHeight: 28,
	}

	img := composer.Compose(frame)

	// Bottom-left origin (38,75) with height 28 covers rows 25..52 in image space.
	if got := img.NRGBAAt(60, 40); got != green {
		t.Fatalf("eye pixel = %v, want %v", got, green)
	}
	if got := img.NRGBAAt(60, 60); got != red {
		t.Fatalf("face pixel below eyes = %v, want %v", got, red)
	}
	if got := img.NRGBAAt(60, 20); got != red {
		t.Fatalf("face pixel above eyes = %v, want %v", got, red)
	}
}

func TestComposeHoverFrameHidesEyes(t *testing.T) {
	composer := newTestComposer(t)
	frame := animator.Frame{
		Mode:       animator.FaceHover,
		EyeOrigin:  model.Point{X: 38, Y: 75},
		EyeHeight:  28,
		EyesHidden: true,
	}

	img := composer.Compose(frame)
	if got := img.NRGBAAt(60, 40); got != blue {
		t.Fatalf("pixel = %v, want hover face %v", got, blue)
	}
}

func TestComposeClosedEyelid(t *testing.T) {
	composer := newTestComposer(t)
	for _, height := range []float64{0, -0.5} {
		frame := animator.Frame{EyeOrigin: model.Point{X: 38, Y: 75}, EyeHeight: height}
		img := composer.Compose(frame)
		if got := img.NRGBAAt(60, 52); got != red {
			t.Fatalf("height %v: pixel = %v, want face %v", height, got, red)
		}
	}
}

func TestComposeHalfClosedSquashesTowardBottom(t *testing.T) {
	composer := newTestComposer(t)
	frame := animator.Frame{EyeOrigin: model.Point{X: 38, Y: 75}, EyeHeight: 14}

	img := composer.Compose(frame)
	if got := img.NRGBAAt(60, 30); got != red {
		t.Fatalf("upper pixel = %v, want face %v", got, red)
	}
	if got := img.NRGBAAt(60, 45); got != green {
		t.Fatalf("lower pixel = %v, want eye %v", got, green)
	}
}

func TestResourceNamesFollowPixels(t *testing.T) {
	composer := newTestComposer(t)
	a := animator.Frame{EyeOrigin: model.Point{X: 38, Y: 75}, EyeHeight: 28}
	b := animator.Frame{EyeOrigin: model.Point{X: 38.2, Y: 74.9}, EyeHeight: 28}
	c := animator.Frame{EyeOrigin: model.Point{X: 43, Y: 75}, EyeHeight: 28}

	if composer.resourceName(a) != composer.resourceName(b) {
		t.Fatal("frames drawing the same pixels should share a name")
	}
	if composer.resourceName(a) == composer.resourceName(c) {
		t.Fatal("frames drawing different pixels should not share a name")
	}
}

func TestPresenterDropsDuplicateFrames(t *testing.T) {
	composer := newTestComposer(t)
	var shown []fyne.Resource
	presenter := NewPresenter(composer, nil, SinkFunc(func(resource fyne.Resource) {
		shown = append(shown, resource)
	}))

	frame := animator.Frame{EyeOrigin: model.Point{X: 38, Y: 75}, EyeHeight: 28}
	presenter.Render(frame)
	presenter.Render(frame)
	frame.EyeOrigin.X = 43
	presenter.Render(frame)

	if len(shown) != 2 {
		t.Fatalf("frames shown = %d, want 2", len(shown))
	}
	if len(shown[0].Content()) == 0 {
		t.Fatal("expected encoded PNG content")
	}
}
