package window

import (
	"testing"

	"github.com/vovakirdan/leapengine/internal/core"
)

func TestEveryInputIsBound(t *testing.T) {
	for _, in := range core.Inputs() {
		if len(keyBindings[in]) == 0 {
			t.Errorf("input %s has no key binding", in)
		}
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames(core.InputJump)
	if len(names) != 2 || names[0] != "Space" || names[1] != "W" {
		t.Errorf("KeyNames(Jump) = %v, expected [Space W]", names)
	}
}

func TestToRGBA(t *testing.T) {
	buf := []core.Color{core.RGB(1, 2, 3), core.ColorWhite}
	got := toRGBA(nil, buf)
	expected := []byte{1, 2, 3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if string(got) != string(expected) {
		t.Errorf("toRGBA() = %v, expected %v", got, expected)
	}

	reused := toRGBA(make([]byte, 0, 64), buf[:1])
	if len(reused) != 4 || cap(reused) != 64 {
		t.Errorf("toRGBA() should reuse capacity, got len=%d cap=%d", len(reused), cap(reused))
	}
}

func TestPresentRejectsShortBuffer(t *testing.T) {
	w := New(Options{})
	if err := w.Present(make([]core.Color, 3), 2, 2); err == nil {
		t.Error("Present() with a short buffer should fail")
	}
	if err := w.Present(make([]core.Color, 4), 2, 2); err != nil {
		t.Errorf("Present() = %v", err)
	}
	if len(w.pixels) != 16 {
		t.Errorf("pixels = %d bytes, expected 16", len(w.pixels))
	}
}
