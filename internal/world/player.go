package world

import (
	"time"

	"github.com/vovakirdan/leapengine/internal/core"
)

// Phase names reported by Player.Phase.
const (
	PhaseGroundedIdle     = "grounded-idle"
	PhaseGroundedCharging = "grounded-charging"
	PhaseAirborne         = "airborne"
)

// Tuning holds the per-frame motion constants.
type Tuning struct {
	Gravity   float64 // Added to velocity_y every airborne frame
	MoveSpeed float64 // Horizontal (and free-roam vertical) pixels per frame
	JumpPower float64 // Instant jump launch velocity (negative = up)
	Charge    ChargeParams
}

// Player is the controllable body.
type Player struct {
	body      Body
	baseColor core.Color
	velocityY float64
	onGround  bool
	charge    JumpCharge

	policy MotionPolicy
	tuning Tuning
	worldW float64
	worldH float64
}

// NewPlayer creates a player at rest inside a worldW x worldH area.
func NewPlayer(body Body, policy MotionPolicy, tuning Tuning, worldW, worldH int) *Player {
	return &Player{
		body:      body,
		baseColor: body.Color,
		policy:    policy,
		tuning:    tuning,
		worldW:    float64(worldW),
		worldH:    float64(worldH),
	}
}

// Body returns a copy of the player's body.
func (p *Player) Body() Body {
	return p.body
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() core.Rect {
	return p.body.Bounds()
}

// VelocityY returns the vertical velocity in pixels per frame.
func (p *Player) VelocityY() float64 {
	return p.velocityY
}

// OnGround reports whether the last update left the player grounded.
func (p *Player) OnGround() bool {
	return p.onGround
}

// Charge returns the current jump charge.
func (p *Player) Charge() JumpCharge {
	return p.charge
}

// Phase returns the player's movement state.
func (p *Player) Phase() string {
	switch {
	case p.charge.IsCharging():
		return PhaseGroundedCharging
	case p.onGround:
		return PhaseGroundedIdle
	default:
		return PhaseAirborne
	}
}

// State returns a snapshot for callers outside the simulation.
func (p *Player) State() core.BodyState {
	return core.BodyState{
		X:         p.body.X,
		Y:         p.body.Y,
		W:         p.body.W,
		H:         p.body.H,
		VelocityY: p.velocityY,
		OnGround:  p.onGround,
		Charging:  p.charge.IsCharging(),
		Phase:     p.Phase(),
	}
}

// Paint draws the player.
func (p *Player) Paint(dst *core.Framebuffer) {
	p.body.Paint(dst)
}

// Update advances the player by one frame. The order is fixed:
// jump, gravity, horizontal move and resolve, vertical move and resolve,
// then the charge guard.
func (p *Player) Update(in core.InputState, platforms []Platform, now time.Time) {
	if p.policy.Movement == MovementFreeRoam {
		p.velocityY = in.Axis(core.InputUp, core.InputDown) * p.tuning.MoveSpeed
	} else {
		p.updateJump(in, now)
		if !p.onGround {
			p.velocityY += p.tuning.Gravity
		}
	}

	dx := in.Axis(core.InputLeft, core.InputRight) * p.tuning.MoveSpeed
	p.moveX(dx, platforms)
	p.moveY(p.velocityY, platforms)

	// Walking off a ledge while charging drops the charge.
	if p.charge.IsCharging() && !p.onGround && !p.supported(platforms) {
		p.cancelCharge()
	}
}

func (p *Player) updateJump(in core.InputState, now time.Time) {
	held := in.Held(core.InputJump)

	if p.policy.Jump == JumpInstant {
		if held && p.onGround {
			p.velocityY = p.tuning.JumpPower
			p.onGround = false
		}
		return
	}

	charge := p.tuning.Charge
	switch {
	case held && p.charge.IsCharging():
		if p.charge.Held(now) >= charge.MaxHold {
			p.body.Color = charge.ChargedColor
		}
	case held && p.onGround:
		p.charge = Charging(now)
	case !held && p.charge.IsCharging():
		p.velocityY = charge.LaunchPower(p.charge.Held(now))
		p.onGround = false
		p.cancelCharge()
	}
}

func (p *Player) cancelCharge() {
	p.charge = Idle()
	p.body.Color = p.baseColor
}

func (p *Player) moveX(dx float64, platforms []Platform) {
	b := &p.body
	b.X = core.ClampF(b.X+dx, 0, p.worldW-float64(b.W))

	if p.policy.Collision == CollisionFallOnly {
		return
	}
	for _, pl := range platforms {
		r := pl.Bounds()
		if !b.Bounds().Intersects(r) {
			continue
		}
		switch {
		case dx > 0:
			b.X = r.X - float64(b.W)
		case dx < 0:
			b.X = r.Right()
		}
	}
	// A platform flush with a world edge must not push the body outside.
	b.X = core.ClampF(b.X, 0, p.worldW-float64(b.W))
}

func (p *Player) moveY(dy float64, platforms []Platform) {
	b := &p.body
	b.Y += dy
	p.onGround = false

	floor := p.worldH - float64(b.H)
	if b.Y < 0 {
		b.Y = 0
		p.velocityY = 0
	} else if b.Y >= floor {
		b.Y = floor
		p.velocityY = 0
		p.onGround = true
	}

	for _, pl := range platforms {
		r := pl.Bounds()
		box := b.Bounds()
		if p.policy.Collision == CollisionFallOnly {
			if dy > 0 && box.OverlapsX(r) && box.Bottom() > r.Y && box.Bottom() <= r.Bottom() {
				p.land(r)
			}
			continue
		}
		if !box.Intersects(r) {
			continue
		}
		switch {
		case dy > 0:
			p.land(r)
		case dy < 0:
			b.Y = r.Bottom()
			p.velocityY = 0
		}
	}
	b.Y = core.ClampF(b.Y, 0, floor)
}

func (p *Player) land(on core.Rect) {
	p.body.Y = on.Y - float64(p.body.H)
	p.velocityY = 0
	p.onGround = true
}

// supported reports whether the player rests exactly on a platform top.
// Strict overlap leaves a resting body ungrounded on alternate frames,
// so the charge guard uses this instead of on_ground alone.
func (p *Player) supported(platforms []Platform) bool {
	box := p.body.Bounds()
	for _, pl := range platforms {
		r := pl.Bounds()
		if box.OverlapsX(r) && box.Bottom() == r.Y {
			return true
		}
	}
	return false
}
