package platform

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dockeyes/internal/core/model"
)

var (
	// ErrUnsupported indicates the capability is not available on this system.
	ErrUnsupported = errors.New("unsupported on this platform")
	// ErrPermissionDenied indicates the process is not trusted for accessibility.
	ErrPermissionDenied = errors.New("accessibility permission denied")
	// ErrIconUnavailable indicates the dock icon could not be located.
	ErrIconUnavailable = errors.New("dock icon unavailable")
)

// FileManagerBundleID identifies the system file manager the app stands in for.
const FileManagerBundleID = "com.apple.finder"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)

	// Trusted reports whether the process may inspect other processes' UI.
	Trusted() bool
	// PromptPermission asks the OS to show its accessibility prompt.
	PromptPermission()

	// LocateIcon returns the dock icon box in top-left screen coordinates.
	LocateIcon(ctx context.Context) (model.IconGeometry, error)
	// ScreenHeight returns the height of the primary screen.
	ScreenHeight() (float64, error)
	// PointerLocation returns the pointer in bottom-left screen coordinates.
	PointerLocation() (model.Point, error)

	// SetDockImage replaces the dock icon with PNG data.
	SetDockImage(data []byte) error

	ActivateFileManager() error
	OpenFileManager() error

	Autostarter
}

type platformService struct {
	appName string
}

// NewService returns a platform-specific implementation.
// appName is the dock title used when the bundle does not report one.
func NewService(appName string) Service {
	return &platformService{appName: appName}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}
