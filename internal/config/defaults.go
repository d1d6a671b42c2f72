package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/leapengine/internal/core"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the default world configuration.
// It matches defaults/world.yaml and is used when the embedded file cannot be parsed.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		World: WorldBounds{
			Width:      1280,
			Height:     720,
			Background: core.ColorBlack,
		},
		Physics: Physics{
			Gravity:   0.25,
			MoveSpeed: 2.0,
			JumpPower: -10.0,
			Charge: ChargeConfig{
				BasePower:     -8.0,
				MaxHold:       Duration(time.Second),
				MaxMultiplier: 1.75,
				ChargedColor:  core.ColorGold,
			},
		},
		Policy: PolicyConfig{
			Jump:      JumpInstant,
			Collision: CollisionSymmetric,
			Movement:  MovementPlatformer,
		},
		Player: BodyConfig{X: 100, Y: 100, W: 50, H: 50, Color: core.ColorWhite},
		Platforms: []PlatformConfig{
			{X: 200, Y: 600, W: 100, H: 20, Color: core.ColorGreen},
			{X: 300, Y: 500, W: 100, H: 20, Color: core.ColorGreen},
			{X: 500, Y: 400, W: 100, H: 20, Color: core.ColorGreen},
			{X: 700, Y: 300, W: 100, H: 20, Color: core.ColorGreen},
			{X: 900, Y: 200, W: 100, H: 20, Color: core.ColorGreen},
			{X: 1100, Y: 150, W: 100, H: 20, Color: core.ColorBlue},
		},
	}
}

// DefaultYAML returns the embedded default world YAML.
func DefaultYAML() []byte {
	return defaultWorldYAML
}
