package scheduler

import (
	"time"

	"dockeyes/internal/core/animator"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	EventPermission EventType = "permission"
	EventIconFound  EventType = "icon_found"
	EventIconLost   EventType = "icon_lost"
	EventModeChange EventType = "mode_change"
	EventBlink      EventType = "blink"
)

// Event reports a scheduler status change to observers.
type Event struct {
	Type    EventType
	Trusted bool
	Mode    animator.FaceMode
	Message string
	At      time.Time
}
