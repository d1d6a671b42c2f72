// Package loop runs the per-frame cycle: poll input, step the scene,
// clear the buffer, paint, present.
package loop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/registry"
)

var (
	// ErrStopped is returned by Step once the surface closes or exit is held.
	ErrStopped = errors.New("loop: stopped")

	// ErrPresent wraps a failed presentation. It is fatal.
	ErrPresent = errors.New("loop: present failed")
)

// Surface is the display collaborator: held-key state in, pixels out.
type Surface interface {
	// Held reports whether a logical input is held right now.
	Held(in core.Input) bool

	// IsOpen is false once the user closed the window or session.
	IsOpen() bool

	// Present shows a row-major buffer of exactly width*height cells.
	Present(buf []core.Color, width, height int) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock used for charge timing.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithReload installs a channel of rebuilt scenes. Pending scenes are
// swapped in between frames; only the newest one is kept.
func WithReload(ch <-chan registry.Scene) Option {
	return func(l *Loop) {
		l.reload = ch
	}
}

// WithStepHook calls fn after every simulation step.
func WithStepHook(fn func(core.StepResult)) Option {
	return func(l *Loop) {
		l.onStep = fn
	}
}

// Loop owns the scene and the pixel buffer for one run.
type Loop struct {
	surface Surface
	scene   registry.Scene
	fb      *core.Framebuffer
	rt      core.RuntimeConfig
	clock   Clock
	logger  *log.Logger
	reload  <-chan registry.Scene
	onStep  func(core.StepResult)

	frame   int
	last    core.StepResult
	stopped bool
}

// New creates a loop that drives scene on surface.
func New(surface Surface, scene registry.Scene, opts ...Option) *Loop {
	rt := scene.Runtime()
	l := &Loop{
		surface: surface,
		scene:   scene,
		rt:      rt,
		fb:      core.NewFramebuffer(rt.Width, rt.Height),
		clock:   SystemClock{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Step runs one frame. It returns ErrStopped when the loop should end,
// and an error wrapping ErrPresent if the surface rejected the frame.
// Once stopped, every later call returns ErrStopped.
func (l *Loop) Step() error {
	if l.stopped {
		return ErrStopped
	}
	if !l.surface.IsOpen() || l.surface.Held(core.InputExit) {
		l.stopped = true
		return ErrStopped
	}

	l.applyReload()

	in := core.Poll(l.surface.Held)
	l.last = l.scene.Step(in, l.clock.Now())
	l.frame++
	if l.onStep != nil {
		l.onStep(l.last)
	}

	l.fb.Clear(l.rt.Background)
	l.scene.Render(l.fb)

	if err := l.surface.Present(l.fb.Pixels(), l.fb.Width(), l.fb.Height()); err != nil {
		l.stopped = true
		return fmt.Errorf("%w: frame %d: %w", ErrPresent, l.frame, err)
	}
	return nil
}

// Run steps until the surface closes, exit is held, or presentation fails.
// A normal stop returns nil.
func (l *Loop) Run() error {
	l.logger.Info("loop started", "scene", l.scene.ID(), "width", l.rt.Width, "height", l.rt.Height)
	for {
		err := l.Step()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrStopped) {
			l.logger.Info("loop stopped", "frames", l.frame)
			return nil
		}
		l.logger.Error("loop aborted", "frames", l.frame, "err", err)
		return err
	}
}

// applyReload swaps in the newest pending scene, if any.
func (l *Loop) applyReload() {
	if l.reload == nil {
		return
	}
	var next registry.Scene
drain:
	for {
		select {
		case s, ok := <-l.reload:
			if !ok {
				l.reload = nil
				break drain
			}
			next = s
		default:
			break drain
		}
	}
	if next == nil {
		return
	}

	l.scene = next
	rt := next.Runtime()
	if rt.Width != l.rt.Width || rt.Height != l.rt.Height {
		l.fb.Resize(rt.Width, rt.Height)
	}
	l.rt = rt
	l.logger.Info("world reloaded", "scene", next.ID(), "frame", l.frame)
}

// Scene returns the scene currently being driven.
func (l *Loop) Scene() registry.Scene {
	return l.scene
}

// Frame returns the number of completed simulation steps.
func (l *Loop) Frame() int {
	return l.frame
}

// Last returns the result of the most recent step.
func (l *Loop) Last() core.StepResult {
	return l.last
}

// Buffer returns the loop's pixel buffer.
func (l *Loop) Buffer() *core.Framebuffer {
	return l.fb
}

// Runtime returns the current buffer size and background.
func (l *Loop) Runtime() core.RuntimeConfig {
	return l.rt
}
