package platform

import (
	"fmt"
	"strconv"
	"strings"

	"dockeyes/internal/core/model"
)

// parseMouseLocation reads `xdotool getmouselocation --shell` output.
// The result keeps X11's top-left origin.
func parseMouseLocation(output string) (model.Point, error) {
	var point model.Point
	var seenX, seenY bool
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "X":
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return model.Point{}, fmt.Errorf("parse pointer x: %w", err)
			}
			point.X = parsed
			seenX = true
		case "Y":
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return model.Point{}, fmt.Errorf("parse pointer y: %w", err)
			}
			point.Y = parsed
			seenY = true
		}
	}
	if !seenX || !seenY {
		return model.Point{}, fmt.Errorf("parse pointer location: missing coordinates in %q", strings.TrimSpace(output))
	}
	return point, nil
}

// parseDisplayGeometry reads `xdotool getdisplaygeometry` output ("W H").
func parseDisplayGeometry(output string) (model.Size, error) {
	fields := strings.Fields(output)
	if len(fields) != 2 {
		return model.Size{}, fmt.Errorf("parse display geometry: unexpected output %q", strings.TrimSpace(output))
	}
	width, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.Size{}, fmt.Errorf("parse display width: %w", err)
	}
	height, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Size{}, fmt.Errorf("parse display height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return model.Size{}, fmt.Errorf("parse display geometry: non-positive size %vx%v", width, height)
	}
	return model.Size{Width: width, Height: height}, nil
}
