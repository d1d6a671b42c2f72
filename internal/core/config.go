package core

// RuntimeConfig contains the surface-independent settings passed to the loop.
type RuntimeConfig struct {
	Width      int   // World width in pixels
	Height     int   // World height in pixels
	Background Color // Clear color for every frame
	TickRate   int   // Frames per second for push-driven surfaces that need a timer (default 60)
}

// DefaultConfig returns a RuntimeConfig matching the default world.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:      1280,
		Height:     720,
		Background: ColorBlack,
		TickRate:   60,
	}
}

// BodyState is a read-only snapshot of the player after a frame.
type BodyState struct {
	X, Y      float64
	W, H      uint
	VelocityY float64
	OnGround  bool
	Charging  bool
	Phase     string
}

// StepResult is returned by a scene after each simulation step.
type StepResult struct {
	Frame  int
	Player BodyState
}
