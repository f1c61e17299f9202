package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dockeyes/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	ShowPreview   bool   `yaml:"show_preview"`
	LaunchAtLogin bool   `yaml:"launch_at_login"`
	PointerPollMS int    `yaml:"pointer_poll_ms"`
}

// Store reads and writes the settings file under a config directory.
type Store struct {
	path string
}

// NewStore creates a store for <configDir>/<appName>/settings.yaml.
func NewStore(configDir, appName string) *Store {
	return &Store{path: filepath.Join(configDir, appName, settingsFileName)}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads settings from YAML.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes settings to YAML.
func (store *Store) Save(settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		LogLevel:      settings.LogLevel,
		LogFormat:     settings.LogFormat,
		ShowPreview:   settings.ShowPreview,
		LaunchAtLogin: settings.LaunchAtLogin,
		PointerPollMS: int(settings.PointerPollInterval / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = level
	}
	if format := strings.TrimSpace(fileData.LogFormat); format != "" {
		settings.LogFormat = format
	}
	if fileData.PointerPollMS >= 5 && fileData.PointerPollMS <= 1000 {
		settings.PointerPollInterval = time.Duration(fileData.PointerPollMS) * time.Millisecond
	}
	settings.ShowPreview = fileData.ShowPreview
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
