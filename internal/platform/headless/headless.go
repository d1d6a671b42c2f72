// Package headless provides a scripted display surface. It presents into
// memory, holds inputs according to a frame script, and closes after a
// fixed number of frames. It backs `leap simulate` and the loop tests.
package headless

import (
	"fmt"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/loop"
)

var _ loop.Surface = (*Surface)(nil)

// Hold keeps an input held for frames [From, To).
type Hold struct {
	Input    core.Input
	From, To int
}

// Surface is an in-memory surface driven by a script.
type Surface struct {
	maxFrames int
	holds     []Hold
	presented int
	failAt    int
	failErr   error
	closed    bool
	last      *core.Framebuffer
}

// New returns a surface that closes after maxFrames presents.
// maxFrames <= 0 never closes on its own.
func New(maxFrames int, holds ...Hold) *Surface {
	return &Surface{
		maxFrames: maxFrames,
		holds:     holds,
		last:      core.NewFramebuffer(0, 0),
	}
}

// Press holds in for frames [from, to).
func (s *Surface) Press(in core.Input, from, to int) *Surface {
	s.holds = append(s.holds, Hold{Input: in, From: from, To: to})
	return s
}

// FailAt makes the frame-th present (1-based) return err.
func (s *Surface) FailAt(frame int, err error) *Surface {
	s.failAt = frame
	s.failErr = err
	return s
}

// Close marks the surface closed.
func (s *Surface) Close() {
	s.closed = true
}

// Held reports whether in is scripted for the frame about to run.
func (s *Surface) Held(in core.Input) bool {
	frame := s.presented
	for _, h := range s.holds {
		if h.Input == in && frame >= h.From && frame < h.To {
			return true
		}
	}
	return false
}

// IsOpen is false after Close or once maxFrames frames were presented.
func (s *Surface) IsOpen() bool {
	if s.closed {
		return false
	}
	return s.maxFrames <= 0 || s.presented < s.maxFrames
}

// Present copies buf as the latest frame.
func (s *Surface) Present(buf []core.Color, width, height int) error {
	s.presented++
	if s.failAt > 0 && s.presented == s.failAt {
		return s.failErr
	}
	if len(buf) != width*height {
		return fmt.Errorf("headless: buffer has %d cells, expected %dx%d", len(buf), width, height)
	}
	s.last.Resize(width, height)
	copy(s.last.Pixels(), buf)
	return nil
}

// Presented returns how many frames were presented.
func (s *Surface) Presented() int {
	return s.presented
}

// Last returns the most recently presented frame.
func (s *Surface) Last() *core.Framebuffer {
	return s.last
}

// WritePNG encodes the last frame as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.last.Image()); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}

// ParseScript parses holds written as "input@from-to", comma separated,
// for example "right@0-120,jump@60-90". Input names are case-insensitive.
// A single frame may be written as "jump@60".
func ParseScript(script string) ([]Hold, error) {
	var holds []Hold
	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, span, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("headless: %q: expected input@from-to", part)
		}
		in, err := parseInput(name)
		if err != nil {
			return nil, err
		}
		from, to, err := parseSpan(span)
		if err != nil {
			return nil, fmt.Errorf("headless: %q: %w", part, err)
		}
		holds = append(holds, Hold{Input: in, From: from, To: to})
	}
	return holds, nil
}

func parseInput(name string) (core.Input, error) {
	for _, in := range core.Inputs() {
		if strings.EqualFold(in.String(), strings.TrimSpace(name)) {
			return in, nil
		}
	}
	return 0, fmt.Errorf("headless: unknown input %q", name)
}

func parseSpan(span string) (int, int, error) {
	lo, hi, ranged := strings.Cut(span, "-")
	from, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start frame: %w", err)
	}
	if !ranged {
		return from, from + 1, nil
	}
	to, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("bad end frame: %w", err)
	}
	if from < 0 || to < from {
		return 0, 0, fmt.Errorf("empty range %d-%d", from, to)
	}
	return from, to, nil
}
