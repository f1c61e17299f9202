package animator

import (
	"math"

	"dockeyes/internal/core/model"
)

// RunStatus reports whether a transient animation run wants more ticks.
type RunStatus int

const (
	RunContinue RunStatus = iota
	RunDone
)

func (status RunStatus) String() string {
	if status == RunDone {
		return "done"
	}
	return "continue"
}

// EyeState is the eye sprite placement inside the icon.
// Origin uses icon-local coordinates with a bottom-left origin.
type EyeState struct {
	Origin     model.Point
	BaseOrigin model.Point
	Height     float64
	Hidden     bool
}

// BlinkRun closes the eyelid and reopens it once.
type BlinkRun struct {
	speed float64
	full  float64
}

func newBlinkRun(speed, full float64) *BlinkRun {
	return &BlinkRun{speed: speed, full: full}
}

// Speed returns the current per-tick height change.
func (run *BlinkRun) Speed() float64 {
	return run.speed
}

// Tick advances the eyelid by one step.
// The floor is not clamped, so the height may dip below zero for one tick.
func (run *BlinkRun) Tick(eyes *EyeState) RunStatus {
	eyes.Height += run.speed
	if eyes.Height <= 0 {
		run.speed = -run.speed
	}
	if eyes.Height >= run.full {
		eyes.Height = run.full
		return RunDone
	}
	return RunContinue
}

// HoverExitRun eases the eyes back to their resting origin one pixel per
// axis per tick.
type HoverExitRun struct{}

// Tick rounds the origin and moves each axis one unit toward the base.
func (run *HoverExitRun) Tick(eyes *EyeState) RunStatus {
	origin := model.Point{X: math.Round(eyes.Origin.X), Y: math.Round(eyes.Origin.Y)}
	origin.X = stepToward(origin.X, eyes.BaseOrigin.X)
	origin.Y = stepToward(origin.Y, eyes.BaseOrigin.Y)
	eyes.Origin = origin

	if origin == eyes.BaseOrigin {
		return RunDone
	}
	return RunContinue
}

func stepToward(value, target float64) float64 {
	if value < target {
		return value + 1
	}
	if value > target {
		return value - 1
	}
	return value
}
