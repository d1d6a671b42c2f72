package headless

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
	"github.com/vovakirdan/leapengine/internal/loop"
	"github.com/vovakirdan/leapengine/internal/world"
)

func newWorld(t *testing.T, v config.Variant) *world.World {
	t.Helper()
	cfg := config.DefaultWorldConfig()
	config.ApplyVariant(&cfg, v)
	w, err := world.New(cfg)
	if err != nil {
		t.Fatalf("world.New() error: %v", err)
	}
	return w
}

func TestParseScript(t *testing.T) {
	holds, err := ParseScript("right@0-120, JUMP@60 ,left@5-5")
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}
	expected := []Hold{
		{core.InputRight, 0, 120},
		{core.InputJump, 60, 61},
		{core.InputLeft, 5, 5},
	}
	if len(holds) != len(expected) {
		t.Fatalf("ParseScript() returned %d holds, expected %d", len(holds), len(expected))
	}
	for i := range expected {
		if holds[i] != expected[i] {
			t.Errorf("holds[%d] = %+v, expected %+v", i, holds[i], expected[i])
		}
	}

	for _, bad := range []string{"right", "fly@1-2", "jump@x", "jump@5-2", "jump@1-y"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q) should fail", bad)
		}
	}
}

func TestScriptedHolds(t *testing.T) {
	s := New(0).Press(core.InputJump, 2, 4)

	var got []bool
	for i := 0; i < 5; i++ {
		got = append(got, s.Held(core.InputJump))
		if err := s.Present(nil, 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	expected := []bool{false, false, true, true, false}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("frame %d held = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestSimulationRestsOnFloor(t *testing.T) {
	surface := New(300)
	l := loop.New(surface, newWorld(t, config.VariantClassic))

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if surface.Presented() != 300 {
		t.Errorf("Presented() = %d, expected 300", surface.Presented())
	}
	st := l.Last().Player
	if !st.OnGround || st.Y != 670 {
		t.Errorf("final state %+v, expected grounded at y=670", st)
	}
	if got := surface.Last().Get(125, 695); got != core.ColorWhite {
		t.Errorf("player pixel = %v, expected white", got)
	}
}

func TestSimulationExitInput(t *testing.T) {
	surface := New(0).Press(core.InputExit, 10, 11)
	l := loop.New(surface, newWorld(t, config.VariantClassic))

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if l.Frame() != 10 {
		t.Errorf("Frame() = %d, expected 10", l.Frame())
	}
}

func TestSimulationPresentFailure(t *testing.T) {
	boom := errors.New("boom")
	surface := New(0).FailAt(1, boom)
	l := loop.New(surface, newWorld(t, config.VariantClassic))

	err := l.Run()
	if !errors.Is(err, loop.ErrPresent) || !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected ErrPresent wrapping boom", err)
	}
}

func TestChargedSimulationIsReproducible(t *testing.T) {
	run := func() core.BodyState {
		holds, err := ParseScript("right@0-200,jump@250-300")
		if err != nil {
			t.Fatal(err)
		}
		surface := New(400, holds...)
		clock := loop.NewStepClock(time.Unix(0, 0), loop.FrameStep(60))
		l := loop.New(surface, newWorld(t, config.VariantCharged), loop.WithClock(clock))
		if err := l.Run(); err != nil {
			t.Fatalf("Run() = %v", err)
		}
		return l.Last().Player
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestWritePNG(t *testing.T) {
	surface := New(1)
	l := loop.New(surface, newWorld(t, config.VariantClassic))
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := surface.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 720 {
		t.Errorf("image size = %dx%d, expected 1280x720", b.Dx(), b.Dy())
	}
	if got := core.FromRGBA(img.At(250, 610)); got != core.ColorGreen {
		t.Errorf("platform pixel = %v, expected green", got)
	}
}
