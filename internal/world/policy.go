package world

import (
	"fmt"

	"github.com/vovakirdan/leapengine/internal/config"
)

// JumpMode selects how the jump input launches the player.
type JumpMode int

const (
	JumpInstant JumpMode = iota // Launch at jump_power the frame jump is held while grounded
	JumpCharged                 // Launch on release, scaled by how long jump was held
)

// CollisionMode selects how the player resolves against platforms.
type CollisionMode int

const (
	CollisionSymmetric CollisionMode = iota // Solid on every side
	CollisionFallOnly                       // Only the top surface stops a falling body
)

// Movement selects the motion model.
type Movement int

const (
	MovementPlatformer Movement = iota // Gravity and jumping
	MovementFreeRoam                   // No gravity, up/down move directly
)

// MotionPolicy is chosen once per world and applied to every update.
type MotionPolicy struct {
	Jump      JumpMode
	Collision CollisionMode
	Movement  Movement
}

// PolicyFromConfig maps YAML policy names onto a MotionPolicy.
func PolicyFromConfig(p config.PolicyConfig) (MotionPolicy, error) {
	var mp MotionPolicy

	switch p.Jump {
	case config.JumpInstant:
		mp.Jump = JumpInstant
	case config.JumpCharged:
		mp.Jump = JumpCharged
	default:
		return mp, fmt.Errorf("world: unknown jump mode %q", p.Jump)
	}

	switch p.Collision {
	case config.CollisionSymmetric:
		mp.Collision = CollisionSymmetric
	case config.CollisionFallOnly:
		mp.Collision = CollisionFallOnly
	default:
		return mp, fmt.Errorf("world: unknown collision mode %q", p.Collision)
	}

	switch p.Movement {
	case config.MovementPlatformer:
		mp.Movement = MovementPlatformer
	case config.MovementFreeRoam:
		mp.Movement = MovementFreeRoam
	default:
		return mp, fmt.Errorf("world: unknown movement %q", p.Movement)
	}

	return mp, nil
}

func (m JumpMode) String() string {
	if m == JumpCharged {
		return config.JumpCharged
	}
	return config.JumpInstant
}

func (m CollisionMode) String() string {
	if m == CollisionFallOnly {
		return config.CollisionFallOnly
	}
	return config.CollisionSymmetric
}

func (m Movement) String() string {
	if m == MovementFreeRoam {
		return config.MovementFreeRoam
	}
	return config.MovementPlatformer
}

func (p MotionPolicy) String() string {
	return fmt.Sprintf("jump=%s collision=%s movement=%s", p.Jump, p.Collision, p.Movement)
}
