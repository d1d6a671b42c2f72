package tui

import (
	"time"

	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/loop"
)

var _ loop.Surface = (*Surface)(nil)

// Surface is the terminal display surface. Presenting renders the frame
// into a string that the Bubble Tea view prints.
type Surface struct {
	hold     *HoldTracker
	now      func() time.Time
	renderer *Renderer
	cols     int
	rows     int
	frame    string
	closed   bool
}

// NewSurface creates a surface that draws into cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	return &Surface{
		hold:     NewHoldTracker(DefaultFirstHold, DefaultRepeatHold),
		now:      time.Now,
		renderer: NewRenderer(),
		cols:     cols,
		rows:     rows,
	}
}

// Press records a key press for in.
func (s *Surface) Press(in core.Input) {
	s.hold.Press(in, s.now())
}

// Held reports whether in was pressed recently enough to count as held.
func (s *Surface) Held(in core.Input) bool {
	return s.hold.Held(in, s.now())
}

// IsOpen is false after Close.
func (s *Surface) IsOpen() bool {
	return !s.closed
}

// Close marks the session as ended.
func (s *Surface) Close() {
	s.closed = true
}

// Resize changes the drawing area.
func (s *Surface) Resize(cols, rows int) {
	s.cols = core.Max(cols, 0)
	s.rows = core.Max(rows, 0)
}

// Size returns the drawing area in cells.
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Present renders buf for the next View.
func (s *Surface) Present(buf []core.Color, width, height int) error {
	s.frame = s.renderer.Render(buf, width, height, s.cols, s.rows)
	return nil
}

// Frame returns the last rendered frame.
func (s *Surface) Frame() string {
	return s.frame
}
