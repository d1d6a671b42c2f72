package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c WorldConfig) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if c.World.Width <= 0 {
		fail("world.width", "must be > 0, got %d", c.World.Width)
	}
	if c.World.Height <= 0 {
		fail("world.height", "must be > 0, got %d", c.World.Height)
	}

	finite := func(field string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fail(field, "must be a finite number, got %g", v)
			return false
		}
		return true
	}
	finite("physics.jump_power", c.Physics.JumpPower)
	finite("physics.charge.base_power", c.Physics.Charge.BasePower)
	finite("player.x", c.Player.X)
	finite("player.y", c.Player.Y)

	switch {
	case !finite("physics.gravity", c.Physics.Gravity):
	case c.Physics.Gravity < 0:
		fail("physics.gravity", "must be >= 0, got %g", c.Physics.Gravity)
	}
	switch {
	case !finite("physics.move_speed", c.Physics.MoveSpeed):
	case c.Physics.MoveSpeed < 0:
		fail("physics.move_speed", "must be >= 0, got %g", c.Physics.MoveSpeed)
	}

	switch c.Policy.Jump {
	case JumpInstant:
	case JumpCharged:
		if c.Physics.Charge.MaxHold <= 0 {
			fail("physics.charge.max_hold", "must be > 0 for charged jumps")
		}
		switch {
		case !finite("physics.charge.max_multiplier", c.Physics.Charge.MaxMultiplier):
		case c.Physics.Charge.MaxMultiplier < 1:
			fail("physics.charge.max_multiplier", "must be >= 1, got %g", c.Physics.Charge.MaxMultiplier)
		}
	default:
		fail("policy.jump", "unknown mode %q (want %q or %q)", c.Policy.Jump, JumpInstant, JumpCharged)
	}

	switch c.Policy.Collision {
	case CollisionSymmetric, CollisionFallOnly:
	default:
		fail("policy.collision", "unknown mode %q (want %q or %q)", c.Policy.Collision, CollisionSymmetric, CollisionFallOnly)
	}

	switch c.Policy.Movement {
	case MovementPlatformer, MovementFreeRoam:
	default:
		fail("policy.movement", "unknown mode %q (want %q or %q)", c.Policy.Movement, MovementPlatformer, MovementFreeRoam)
	}

	if c.Player.W == 0 || c.Player.H == 0 {
		fail("player", "size must be non-zero, got %dx%d", c.Player.W, c.Player.H)
	}
	if c.World.Width > 0 && int(c.Player.W) > c.World.Width {
		fail("player.w", "%d does not fit in world width %d", c.Player.W, c.World.Width)
	}
	if c.World.Height > 0 && int(c.Player.H) > c.World.Height {
		fail("player.h", "%d does not fit in world height %d", c.Player.H, c.World.Height)
	}

	for i, p := range c.Platforms {
		finite(fmt.Sprintf("platforms[%d].x", i), p.X)
		finite(fmt.Sprintf("platforms[%d].y", i), p.Y)
		if p.W == 0 {
			fail(fmt.Sprintf("platforms[%d].w", i), "must be > 0")
		}
		if p.H == 0 {
			fail(fmt.Sprintf("platforms[%d].h", i), "must be > 0")
		}
	}

	return errors.Join(errs...)
}
