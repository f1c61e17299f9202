package model

import "time"

// Settings holds the ambient options read from the settings file.
// Animation constants are fixed and not part of it.
type Settings struct {
	LogLevel  string
	LogFormat string

	ShowPreview         bool
	LaunchAtLogin       bool
	PointerPollInterval time.Duration
}

// DefaultSettings returns default settings for DockEyes.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:            "info",
		LogFormat:           "text",
		ShowPreview:         false,
		LaunchAtLogin:       false,
		PointerPollInterval: 16 * time.Millisecond,
	}
}
