package world

import (
	"fmt"
	"time"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/registry"
)

// CustomID identifies a world whose policy matches no preset.
const CustomID = "custom"

var titles = map[config.Variant]string{
	config.VariantClassic:  "Classic",
	config.VariantCharged:  "Charged Jump",
	config.VariantOneWay:   "One-Way Platforms",
	config.VariantFreeRoam: "Free Roam",
}

func init() {
	for _, v := range config.Variants() {
		registry.Register(string(v), titles[v], variantFactory(v))
	}
}

func variantFactory(v config.Variant) registry.Factory {
	return func(cfg config.WorldConfig) (registry.Scene, error) {
		config.ApplyVariant(&cfg, v)
		w, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}

// World owns the player and the static platforms of one level.
type World struct {
	id        string
	cfg       config.WorldConfig
	policy    MotionPolicy
	player    *Player
	platforms []Platform
	frame     int
}

// New builds a world from cfg. The config is validated first.
func New(cfg config.WorldConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	policy, err := PolicyFromConfig(cfg.Policy)
	if err != nil {
		return nil, err
	}

	tuning := Tuning{
		Gravity:   cfg.Physics.Gravity,
		MoveSpeed: cfg.Physics.MoveSpeed,
		JumpPower: cfg.Physics.JumpPower,
		Charge:    chargeParamsFromConfig(cfg.Physics.Charge),
	}
	body := Body{
		X:     cfg.Player.X,
		Y:     cfg.Player.Y,
		W:     cfg.Player.W,
		H:     cfg.Player.H,
		Color: cfg.Player.Color,
	}

	cfg.Platforms = append([]config.PlatformConfig(nil), cfg.Platforms...)
	return &World{
		id:        variantID(cfg.Policy),
		cfg:       cfg,
		policy:    policy,
		player:    NewPlayer(body, policy, tuning, cfg.World.Width, cfg.World.Height),
		platforms: platformsFromConfig(cfg.Platforms),
	}, nil
}

// variantID returns the preset whose policy equals p, or CustomID.
func variantID(p config.PolicyConfig) string {
	for _, v := range config.Variants() {
		var probe config.WorldConfig
		config.ApplyVariant(&probe, v)
		if probe.Policy == p {
			return string(v)
		}
	}
	return CustomID
}

// ID returns the variant id, or CustomID.
func (w *World) ID() string {
	return w.id
}

// Title returns the display name.
func (w *World) Title() string {
	if t, ok := titles[config.Variant(w.id)]; ok {
		return t
	}
	return "Custom"
}

// Step advances the world by one frame.
func (w *World) Step(in core.InputState, now time.Time) core.StepResult {
	w.player.Update(in, w.platforms, now)
	w.frame++
	return core.StepResult{Frame: w.frame, Player: w.player.State()}
}

// Render paints the player, then every platform in list order.
// Later entries overdraw earlier ones. dst is expected to be cleared.
func (w *World) Render(dst *core.Framebuffer) {
	w.player.Paint(dst)
	for _, p := range w.platforms {
		p.Paint(dst)
	}
}

// Runtime returns the buffer size and background color.
func (w *World) Runtime() core.RuntimeConfig {
	return w.cfg.Runtime(0)
}

// State returns the player snapshot.
func (w *World) State() core.BodyState {
	return w.player.State()
}

// Frame returns the number of steps taken.
func (w *World) Frame() int {
	return w.frame
}

// Player returns the player.
func (w *World) Player() *Player {
	return w.player
}

// Platforms returns the platforms in list order.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Policy returns the motion policy.
func (w *World) Policy() MotionPolicy {
	return w.policy
}

// Config returns the config the world was built from.
func (w *World) Config() config.WorldConfig {
	return w.cfg
}
