//go:build !linux && !(darwin && cgo)

package platform

import (
	"context"
	"path/filepath"
	"runtime"

	"dockeyes/internal/core/model"
)

func (service *platformService) Trusted() bool {
	return true
}

func (service *platformService) PromptPermission() {}

func (service *platformService) LocateIcon(context.Context) (model.IconGeometry, error) {
	return model.IconGeometry{}, ErrUnsupported
}

func (service *platformService) ScreenHeight() (float64, error) {
	return 0, ErrUnsupported
}

func (service *platformService) PointerLocation() (model.Point, error) {
	return model.Point{}, ErrUnsupported
}

func (service *platformService) SetDockImage([]byte) error {
	return ErrUnsupported
}

func (service *platformService) ActivateFileManager() error {
	return ErrUnsupported
}

func (service *platformService) OpenFileManager() error {
	return ErrUnsupported
}

func fallbackConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support")
	default:
		return filepath.Join(homeDir, ".config")
	}
}
