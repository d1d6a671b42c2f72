package loop

import (
	"sync"
	"time"
)

// Clock supplies the wall-clock instant passed to each step.
// Physics advances per frame; only the jump charge reads the clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepClock advances by a fixed step on every call to Now,
// which makes charge timing reproducible in headless runs.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock returns a clock whose first reading is start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// FrameStep returns the duration of one frame at tickRate frames per second.
func FrameStep(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// Now returns the current reading and advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
