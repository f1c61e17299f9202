package animator

import (
	"math"

	"dockeyes/internal/core/model"
)

// FaceMode selects the static face drawn behind the eyes.
type FaceMode int

const (
	FaceBase FaceMode = iota
	FaceHover
)

func (mode FaceMode) String() string {
	switch mode {
	case FaceBase:
		return "base"
	case FaceHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Config contains sprite geometry and animation constants.
type Config struct {
	BaseOrigin model.Point
	// EyeHeight is the full height of the eye sprite.
	EyeHeight float64

	HorizontalScale float64
	VerticalScale   float64

	BlinkSpeed  float64
	BlinkChance float64
}

// Frame is a snapshot of everything needed to draw the icon.
type Frame struct {
	Mode       FaceMode
	EyeOrigin  model.Point
	EyeHeight  float64
	EyesHidden bool
}

// Renderer receives a render request after every visible state change.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(Frame)

// Render calls the underlying function.
func (fn RenderFunc) Render(frame Frame) {
	fn(frame)
}

// Sample is one pointer observation paired with the icon geometry queried
// for it. IconAvailable is false when the icon could not be located.
type Sample struct {
	Mouse         model.Point
	Icon          model.IconGeometry
	IconAvailable bool
	ScreenHeight  float64
}

// Animator tracks the pointer and drives the blink and hover-exit runs.
// It is not safe for concurrent use; every call must come from one timeline.
type Animator struct {
	config    Config
	eyes      EyeState
	mode      FaceMode
	blink     *BlinkRun
	hoverExit *HoverExitRun
	renderer  Renderer
	onMode    func(FaceMode)
}

// New creates an animator with the eyes at rest.
func New(config Config, renderer Renderer) *Animator {
	return &Animator{
		config: config,
		eyes: EyeState{
			Origin:     config.BaseOrigin,
			BaseOrigin: config.BaseOrigin,
			Height:     config.EyeHeight,
		},
		mode:     FaceBase,
		renderer: renderer,
	}
}

// SetOnModeChange sets a callback fired whenever the face mode flips.
func (animator *Animator) SetOnModeChange(handler func(FaceMode)) {
	animator.onMode = handler
}

// Mode returns the active face.
func (animator *Animator) Mode() FaceMode {
	return animator.mode
}

// Eyes returns a copy of the eye state.
func (animator *Animator) Eyes() EyeState {
	return animator.eyes
}

// Blinking reports whether a blink run is in flight.
func (animator *Animator) Blinking() bool {
	return animator.blink != nil
}

// HoverExiting reports whether a hover-exit run is in flight.
func (animator *Animator) HoverExiting() bool {
	return animator.hoverExit != nil
}

// Frame returns the current render snapshot.
func (animator *Animator) Frame() Frame {
	return Frame{
		Mode:       animator.mode,
		EyeOrigin:  animator.eyes.Origin,
		EyeHeight:  animator.eyes.Height,
		EyesHidden: animator.eyes.Hidden,
	}
}

// HandlePointer recomputes hover state and eye aim for one sample.
// It returns false when the sample was skipped because the icon was unavailable.
func (animator *Animator) HandlePointer(sample Sample) bool {
	if !sample.IconAvailable {
		return false
	}

	if sample.Icon.Contains(sample.Mouse, sample.ScreenHeight) {
		animator.EnterHover()
		return true
	}

	if animator.mode == FaceHover && animator.hoverExit == nil {
		animator.StartHoverExit()
	}
	// The easing run owns the origin until it lands on the base.
	if animator.hoverExit != nil {
		return true
	}

	animator.Aim(sample.Mouse, sample.Icon.Center(sample.ScreenHeight))
	return true
}

// Aim points the eyes from the icon centre toward the pointer.
func (animator *Animator) Aim(mouse, center model.Point) {
	angle := Angle(mouse.X-center.X, mouse.Y-center.Y)
	offset := model.Point{
		X: math.Cos(angle) * animator.config.HorizontalScale,
		Y: math.Sin(angle) * animator.config.VerticalScale,
	}
	animator.eyes.Origin = animator.eyes.BaseOrigin.Add(offset)
	animator.render()
}

// Angle returns atan(dy/dx), shifted by pi when dx is negative.
// dx == 0 yields +-pi/2 through the infinite quotient; dx == dy == 0 yields NaN.
func Angle(dx, dy float64) float64 {
	angle := math.Atan(dy / dx)
	if dx < 0 {
		angle += math.Pi
	}
	return angle
}

// EnterHover hides the eyes and shows the hover face. A hover-exit run in
// flight is cancelled. Returns false if nothing changed.
func (animator *Animator) EnterHover() bool {
	if animator.mode == FaceHover && animator.eyes.Hidden && animator.hoverExit == nil {
		return false
	}
	animator.hoverExit = nil
	animator.eyes.Hidden = true
	animator.setMode(FaceHover)
	animator.render()
	return true
}

// StartHoverExit begins easing the eyes back to the base origin.
// Returns false if a run is already active.
func (animator *Animator) StartHoverExit() bool {
	if animator.hoverExit != nil {
		return false
	}
	animator.hoverExit = &HoverExitRun{}
	return true
}

// TickHoverExit advances the hover-exit run by one step. When the run lands
// on the base origin the eyes reappear and the base face is restored.
func (animator *Animator) TickHoverExit() RunStatus {
	if animator.hoverExit == nil {
		return RunDone
	}
	status := animator.hoverExit.Tick(&animator.eyes)
	if status == RunDone {
		animator.hoverExit = nil
		animator.eyes.Hidden = false
		animator.setMode(FaceBase)
	}
	animator.render()
	return status
}

// MaybeBlink starts a blink run when roll falls under the blink chance.
// roll is expected in [0, 1). Returns true if a run was started.
func (animator *Animator) MaybeBlink(roll float64) bool {
	if animator.blink != nil || animator.config.EyeHeight <= 0 {
		return false
	}
	if roll >= animator.config.BlinkChance {
		return false
	}
	animator.blink = newBlinkRun(animator.config.BlinkSpeed, animator.config.EyeHeight)
	return true
}

// TickBlink advances the blink run by one step.
func (animator *Animator) TickBlink() RunStatus {
	if animator.blink == nil {
		return RunDone
	}
	status := animator.blink.Tick(&animator.eyes)
	if status == RunDone {
		animator.blink = nil
	}
	animator.render()
	return status
}

func (animator *Animator) setMode(mode FaceMode) {
	if animator.mode == mode {
		return
	}
	animator.mode = mode
	if animator.onMode != nil {
		animator.onMode(mode)
	}
}

func (animator *Animator) render() {
	if animator.renderer != nil {
		animator.renderer.Render(animator.Frame())
	}
}
