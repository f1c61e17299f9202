package animator

import "dockeyes/internal/core/model"

// DefaultConfig returns the geometry of the bundled sprites.
func DefaultConfig() Config {
	return Config{
		BaseOrigin:      model.Point{X: 38, Y: 75},
		EyeHeight:       28,
		HorizontalScale: 5,
		VerticalScale:   10,
		BlinkSpeed:      -0.5,
		BlinkChance:     0.5,
	}
}
