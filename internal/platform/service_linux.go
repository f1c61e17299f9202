//go:build linux

package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"dockeyes/internal/core/model"
)

// X11 has no accessibility gate and no dock tile; the pointer comes from
// xdotool when it is installed.

func (service *platformService) Trusted() bool {
	return true
}

func (service *platformService) PromptPermission() {}

func (service *platformService) LocateIcon(ctx context.Context) (model.IconGeometry, error) {
	if err := ctx.Err(); err != nil {
		return model.IconGeometry{}, err
	}
	return model.IconGeometry{}, fmt.Errorf("%w: no dock on %s", ErrIconUnavailable, sessionType())
}

func (service *platformService) ScreenHeight() (float64, error) {
	output, err := runXdotool("getdisplaygeometry")
	if err != nil {
		return 0, err
	}
	size, err := parseDisplayGeometry(output)
	if err != nil {
		return 0, err
	}
	return size.Height, nil
}

func (service *platformService) PointerLocation() (model.Point, error) {
	output, err := runXdotool("getmouselocation", "--shell")
	if err != nil {
		return model.Point{}, err
	}
	point, err := parseMouseLocation(output)
	if err != nil {
		return model.Point{}, err
	}
	screenHeight, err := service.ScreenHeight()
	if err != nil {
		return model.Point{}, err
	}
	point.Y = screenHeight - point.Y
	return point, nil
}

func (service *platformService) SetDockImage([]byte) error {
	return ErrUnsupported
}

func (service *platformService) ActivateFileManager() error {
	return ErrUnsupported
}

func (service *platformService) OpenFileManager() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("open file manager: %w", err)
	}
	output, err := exec.Command("xdg-open", homeDir).CombinedOutput()
	if err != nil {
		return fmt.Errorf("open file manager: xdg-open failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func runXdotool(args ...string) (string, error) {
	if strings.ToLower(os.Getenv("XDG_SESSION_TYPE")) == "wayland" {
		return "", fmt.Errorf("%w: pointer location on wayland", ErrUnsupported)
	}
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return "", fmt.Errorf("%w: xdotool not found", ErrUnsupported)
	}
	output, err := exec.Command(path, args...).Output()
	if err != nil {
		return "", fmt.Errorf("xdotool %s: %w", strings.Join(args, " "), err)
	}
	return string(output), nil
}

func sessionType() string {
	session := strings.ToLower(os.Getenv("XDG_SESSION_TYPE"))
	if session == "" {
		return "x11"
	}
	return session
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
