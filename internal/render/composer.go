package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"dockeyes/internal/core/animator"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"
)

// Composer draws icon frames from the face and eye sprites.
// Frame coordinates use a bottom-left origin inside the icon.
type Composer struct {
	base  image.Image
	hover image.Image
	eyes  image.Image
}

// NewComposer creates a composer. base and hover must share the same bounds.
func NewComposer(base, hover, eyes image.Image) (*Composer, error) {
	if base == nil || hover == nil || eyes == nil {
		return nil, fmt.Errorf("new composer: missing sprite")
	}
	if base.Bounds().Size() != hover.Bounds().Size() {
		return nil, fmt.Errorf("new composer: base %v and hover %v sizes differ", base.Bounds().Size(), hover.Bounds().Size())
	}
	return &Composer{base: base, hover: hover, eyes: eyes}, nil
}

// Size returns the icon size in pixels.
func (composer *Composer) Size() image.Point {
	return composer.base.Bounds().Size()
}

// Compose draws one frame.
func (composer *Composer) Compose(frame animator.Frame) *image.NRGBA {
	size := composer.Size()
	canvas := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))

	face := composer.base
	if frame.Mode == animator.FaceHover {
		face = composer.hover
	}
	draw.Draw(canvas, canvas.Bounds(), face, face.Bounds().Min, draw.Src)

	if frame.EyesHidden {
		return canvas
	}
	target, ok := composer.eyeRect(frame, size)
	if !ok {
		return canvas
	}
	draw.ApproxBiLinear.Scale(canvas, target, composer.eyes, composer.eyes.Bounds(), draw.Over, nil)
	return canvas
}

// EncodePNG composes a frame and encodes it as PNG.
func (composer *Composer) EncodePNG(frame animator.Frame) ([]byte, error) {
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, composer.Compose(frame)); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buffer.Bytes(), nil
}

// Resource composes a frame into a Fyne resource.
func (composer *Composer) Resource(frame animator.Frame) (fyne.Resource, error) {
	data, err := composer.EncodePNG(frame)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(composer.resourceName(frame), data), nil
}

// eyeRect maps the bottom-left eye origin and height to image space.
// The sprite squashes toward its bottom edge as the height shrinks.
func (composer *Composer) eyeRect(frame animator.Frame, size image.Point) (image.Rectangle, bool) {
	if frame.EyeHeight <= 0 || math.IsNaN(frame.EyeOrigin.X) || math.IsNaN(frame.EyeOrigin.Y) {
		return image.Rectangle{}, false
	}
	width := composer.eyes.Bounds().Dx()
	left := int(math.Round(frame.EyeOrigin.X))
	bottom := int(math.Round(float64(size.Y) - frame.EyeOrigin.Y))
	top := int(math.Round(float64(size.Y) - frame.EyeOrigin.Y - frame.EyeHeight))

	rect := image.Rect(left, top, left+width, bottom)
	if rect.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	return rect, true
}

// resourceName is unique per drawn eye rectangle and face.
func (composer *Composer) resourceName(frame animator.Frame) string {
	if frame.EyesHidden {
		return fmt.Sprintf("frame-%s.png", frame.Mode)
	}
	rect, ok := composer.eyeRect(frame, composer.Size())
	if !ok {
		return fmt.Sprintf("frame-%s-closed.png", frame.Mode)
	}
	return fmt.Sprintf("frame-%s-%d-%d-%d-%d.png", frame.Mode, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}
