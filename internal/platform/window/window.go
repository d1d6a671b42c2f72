// Package window presents the simulation in a desktop window through Ebitengine.
// Ebitengine owns the main loop, so the frame loop is advanced from Update
// one Step at a time.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/loop"
)

var _ loop.Surface = (*Window)(nil)

// Options control the window.
type Options struct {
	Title    string
	Scale    float64 // Window size multiplier; the buffer size never changes
	TickRate int     // Updates per second (default 60)
}

// Window is an Ebitengine-backed surface.
type Window struct {
	opts   Options
	width  int
	height int
	pixels []byte // RGBA bytes of the last presented frame
}

// New creates a window surface. Nothing is shown until Run.
func New(opts Options) *Window {
	if opts.Title == "" {
		opts.Title = "LeapEngine"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	return &Window{opts: opts}
}

// Held reports whether any key bound to in is pressed.
func (w *Window) Held(in core.Input) bool {
	for _, k := range keyBindings[in] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsOpen is false once the user asked to close the window.
func (w *Window) IsOpen() bool {
	return !ebiten.IsWindowBeingClosed()
}

// Present converts buf to RGBA bytes for the next Draw.
func (w *Window) Present(buf []core.Color, width, height int) error {
	if len(buf) != width*height {
		return fmt.Errorf("window: buffer has %d cells, expected %dx%d", len(buf), width, height)
	}
	w.width, w.height = width, height
	w.pixels = toRGBA(w.pixels, buf)
	return nil
}

// toRGBA packs 0xRRGGBB cells into opaque RGBA bytes, reusing dst when it fits.
func toRGBA(dst []byte, buf []core.Color) []byte {
	n := len(buf) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range buf {
		r, g, b := c.RGB()
		dst[4*i] = r
		dst[4*i+1] = g
		dst[4*i+2] = b
		dst[4*i+3] = 0xFF
	}
	return dst
}

// Run opens the window and drives l until it stops. A normal stop,
// including closing the window, returns nil.
func (w *Window) Run(l *loop.Loop) error {
	rt := l.Runtime()
	w.width, w.height = rt.Width, rt.Height

	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(int(float64(rt.Width)*w.opts.Scale), int(float64(rt.Height)*w.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.opts.TickRate)

	err := ebiten.RunGame(&game{window: w, loop: l})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game adapts the frame loop to ebiten.Game.
type game struct {
	window *Window
	loop   *loop.Loop
}

func (g *game) Update() error {
	err := g.loop.Step()
	if errors.Is(err, loop.ErrStopped) {
		return ebiten.Termination
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.window
	if len(w.pixels) == 0 {
		return
	}
	b := screen.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		// Layout catches up with a resized buffer on the next frame.
		return
	}
	screen.WritePixels(w.pixels)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.window.width, g.window.height
}
