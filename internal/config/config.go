// Package config provides YAML-based world configuration loading,
// variant presets and validation for the engine.
package config

import "github.com/vovakirdan/leapengine/internal/core"

// WorldConfig contains all static configuration for a world.
type WorldConfig struct {
	World     WorldBounds      `yaml:"world"`
	Physics   Physics          `yaml:"physics"`
	Policy    PolicyConfig     `yaml:"policy"`
	Player    BodyConfig       `yaml:"player"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

// WorldBounds defines the pixel buffer and playable area.
type WorldBounds struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background core.Color `yaml:"background"`
}

// Physics defines per-frame motion constants.
type Physics struct {
	Gravity   float64      `yaml:"gravity"`    // Added to velocity_y every airborne frame
	MoveSpeed float64      `yaml:"move_speed"` // Horizontal pixels per frame
	JumpPower float64      `yaml:"jump_power"` // Instant jump launch velocity (negative = up)
	Charge    ChargeConfig `yaml:"charge"`
}

// ChargeConfig defines the charged jump. Only read when policy.jump is "charged".
type ChargeConfig struct {
	BasePower     float64    `yaml:"base_power"`     // Launch velocity for a zero-length hold
	MaxHold       Duration   `yaml:"max_hold"`       // Hold time at which the multiplier caps
	MaxMultiplier float64    `yaml:"max_multiplier"` // Launch multiplier at MaxHold
	ChargedColor  core.Color `yaml:"charged_color"`  // Player color once fully charged
}

// PolicyConfig selects how the player moves and collides.
type PolicyConfig struct {
	Jump      string `yaml:"jump"`      // "instant" or "charged"
	Collision string `yaml:"collision"` // "symmetric" or "fall_only"
	Movement  string `yaml:"movement"`  // "platformer" or "free_roam"
}

// BodyConfig defines a rectangle body.
type BodyConfig struct {
	X     float64    `yaml:"x"`
	Y     float64    `yaml:"y"`
	W     uint       `yaml:"w"`
	H     uint       `yaml:"h"`
	Color core.Color `yaml:"color"`
}

// PlatformConfig defines a static platform.
type PlatformConfig = BodyConfig

// Policy names accepted in YAML.
const (
	JumpInstant = "instant"
	JumpCharged = "charged"

	CollisionSymmetric = "symmetric"
	CollisionFallOnly  = "fall_only"

	MovementPlatformer = "platformer"
	MovementFreeRoam   = "free_roam"
)

// Runtime returns the surface-facing part of the config.
func (c WorldConfig) Runtime(tickRate int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Width = c.World.Width
	rt.Height = c.World.Height
	rt.Background = c.World.Background
	if tickRate > 0 {
		rt.TickRate = tickRate
	}
	return rt
}
