package world

import (
	"time"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
)

// JumpCharge is either Idle or Charging since some instant.
// The zero value is Idle.
type JumpCharge struct {
	charging bool
	since    time.Time
}

// Idle returns a charge with nothing in progress.
func Idle() JumpCharge {
	return JumpCharge{}
}

// Charging returns a charge that started at since.
func Charging(since time.Time) JumpCharge {
	return JumpCharge{charging: true, since: since}
}

// IsCharging reports whether a charge is in progress.
func (c JumpCharge) IsCharging() bool {
	return c.charging
}

// Since returns when the charge started. ok is false when Idle.
func (c JumpCharge) Since() (since time.Time, ok bool) {
	return c.since, c.charging
}

// Held returns how long the charge has been held at now, never negative.
// Idle charges report zero.
func (c JumpCharge) Held(now time.Time) time.Duration {
	if !c.charging {
		return 0
	}
	d := now.Sub(c.since)
	if d < 0 {
		return 0
	}
	return d
}

// ChargeParams controls the charged jump.
type ChargeParams struct {
	BasePower     float64       // Launch velocity for a zero-length hold (negative = up)
	MaxHold       time.Duration // Hold time at which the launch caps
	MaxMultiplier float64       // Launch multiplier reached at MaxHold
	ChargedColor  core.Color    // Player color once MaxHold is reached
}

func chargeParamsFromConfig(c config.ChargeConfig) ChargeParams {
	return ChargeParams{
		BasePower:     c.BasePower,
		MaxHold:       c.MaxHold.Std(),
		MaxMultiplier: c.MaxMultiplier,
		ChargedColor:  c.ChargedColor,
	}
}

// LaunchPower returns the launch velocity for a hold of the given length.
// The hold is capped at MaxHold, so the magnitude grows with hold and then
// stays at BasePower*MaxMultiplier.
func (p ChargeParams) LaunchPower(hold time.Duration) float64 {
	if p.MaxHold <= 0 {
		return p.BasePower
	}
	if hold < 0 {
		hold = 0
	}
	if hold > p.MaxHold {
		hold = p.MaxHold
	}
	ratio := float64(hold) / float64(p.MaxHold)
	return p.BasePower * (1 + (p.MaxMultiplier-1)*ratio)
}
