package core

// Input is a logical input, abstracted from physical keys.
// Surfaces map their own keys onto these.
type Input int

const (
	InputLeft  Input = iota // Left arrow, A
	InputRight              // Right arrow, D
	InputUp                 // Up arrow, W (free roam only)
	InputDown               // Down arrow, S (free roam only)
	InputJump               // Space, W
	InputExit               // Escape

	inputCount
)

// Inputs lists every logical input in polling order.
func Inputs() []Input {
	out := make([]Input, 0, inputCount)
	for in := Input(0); in < inputCount; in++ {
		out = append(out, in)
	}
	return out
}

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputJump:
		return "Jump"
	case InputExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// InputState is the set of inputs held during one frame.
// The zero value has nothing held.
type InputState struct {
	held uint32
}

// NewInputState returns a state with the given inputs held.
func NewInputState(held ...Input) InputState {
	var s InputState
	for _, in := range held {
		s.Set(in)
	}
	return s
}

// Set marks an input as held.
func (s *InputState) Set(in Input) {
	if in < 0 || in >= inputCount {
		return
	}
	s.held |= 1 << uint(in)
}

// Held returns true if the input is held this frame.
func (s InputState) Held(in Input) bool {
	if in < 0 || in >= inputCount {
		return false
	}
	return s.held&(1<<uint(in)) != 0
}

// Empty reports whether nothing is held.
func (s InputState) Empty() bool {
	return s.held == 0
}

// Axis returns -1, 0 or +1 from a negative/positive input pair.
// Both held cancel out.
func (s InputState) Axis(neg, pos Input) float64 {
	var v float64
	if s.Held(neg) {
		v--
	}
	if s.Held(pos) {
		v++
	}
	return v
}

// Poll builds an InputState by asking held for every logical input.
func Poll(held func(Input) bool) InputState {
	var s InputState
	for in := Input(0); in < inputCount; in++ {
		if held(in) {
			s.Set(in)
		}
	}
	return s
}
