package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
)

type stubScene struct {
	id  string
	cfg config.WorldConfig
}

func (s *stubScene) ID() string                                      { return s.id }
func (s *stubScene) Title() string                                   { return "Stub" }
func (s *stubScene) Step(core.InputState, time.Time) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Framebuffer)                        {}
func (s *stubScene) Runtime() core.RuntimeConfig                     { return s.cfg.Runtime(0) }
func (s *stubScene) State() core.BodyState                           { return core.BodyState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", "Stub", func(cfg config.WorldConfig) (Scene, error) {
		return &stubScene{id: "test-stub", cfg: cfg}, nil
	})

	if !Exists("test-stub") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.DefaultWorldConfig()
	cfg.World.Width = 640
	s, err := Create("test-stub", cfg)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if s.Runtime().Width != 640 {
		t.Errorf("factory did not receive the config, width = %d", s.Runtime().Width)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("List() title = %q, expected \"Stub\"", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered variant")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-variant", config.DefaultWorldConfig()); err == nil {
		t.Error("Create() with an unknown id should fail")
	}

	boom := errors.New("boom")
	Register("test-failing", "Failing", func(config.WorldConfig) (Scene, error) {
		return nil, boom
	})
	_, err := Create("test-failing", config.DefaultWorldConfig())
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected it to wrap the factory error", err)
	}
	if err != nil && !strings.Contains(err.Error(), "test-failing") {
		t.Errorf("Create() error = %q, expected it to name the variant", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.WorldConfig) (Scene, error) { return &stubScene{}, nil }
	Register("test-dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same id should panic")
		}
	}()
	Register("test-dup", "Dup", f)
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
