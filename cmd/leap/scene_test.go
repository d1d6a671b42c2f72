package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/world"
)

func TestBuildScene(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	cfg.Policy.Jump = config.JumpCharged

	s, err := buildScene(cfg, "")
	if err != nil {
		t.Fatalf("buildScene() error: %v", err)
	}
	if s.ID() != "charged" {
		t.Errorf("ID() = %q, expected the config's own policy", s.ID())
	}

	s, err = buildScene(cfg, "freeroam")
	if err != nil {
		t.Fatalf("buildScene() error: %v", err)
	}
	if s.ID() != "freeroam" {
		t.Errorf("ID() = %q, expected the variant to override the policy", s.ID())
	}

	if _, err := buildScene(cfg, "moon"); err == nil {
		t.Error("buildScene() with an unknown variant should fail")
	}
}

func TestSourceIsFile(t *testing.T) {
	for source, expected := range map[string]bool{
		"embedded":           false,
		"builtin":            false,
		"configs/world.yaml": true,
	} {
		if got := sourceIsFile(source); got != expected {
			t.Errorf("sourceIsFile(%q) = %v, expected %v", source, got, expected)
		}
	}
}

func TestStartReloadDisabled(t *testing.T) {
	flagWatch = false
	r, err := startReload(log.New(os.Stderr), "embedded", "")
	if err != nil || r != nil {
		t.Errorf("startReload() = %v, %v, expected nil, nil", r, err)
	}
	if r.Scenes() != nil {
		t.Error("Scenes() on a nil reloader should be nil")
	}
	r.Close()
}

func TestReloadDeliversScenes(t *testing.T) {
	flagWatch = true
	defer func() { flagWatch = false }()

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := startReload(log.New(os.Stderr), "embedded", ""); err == nil {
		t.Error("watching the embedded default should fail")
	}

	r, err := startReload(log.New(os.Stderr), path, "oneway")
	if err != nil {
		t.Fatalf("startReload() error: %v", err)
	}
	defer r.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-r.Scenes():
		w, ok := s.(*world.World)
		if !ok {
			t.Fatalf("reloaded scene is %T, expected *world.World", s)
		}
		if w.ID() != "oneway" || w.Config().Physics.Gravity != 0.5 {
			t.Errorf("reloaded %s with gravity %v, expected oneway with 0.5", w.ID(), w.Config().Physics.Gravity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no scene after rewriting the config")
	}
}

func TestWriteVariants(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVariants(&buf, config.DefaultWorldConfig()); err != nil {
		t.Fatalf("writeVariants() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"* classic",
		"  oneway",
		"fall_only",
		"free_roam",
		"charged",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("writeVariants() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, world.CustomID) {
		t.Errorf("default config should match a preset, got:\n%s", out)
	}
}

func TestWriteVariantsCustomPolicy(t *testing.T) {
	cfg := config.DefaultWorldConfig()
	cfg.Policy = config.PolicyConfig{Jump: config.JumpCharged, Collision: config.CollisionFallOnly, Movement: config.MovementPlatformer}

	var buf bytes.Buffer
	if err := writeVariants(&buf, cfg); err != nil {
		t.Fatalf("writeVariants() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "* custom") || !strings.Contains(out, "jump=charged collision=fall_only") {
		t.Errorf("writeVariants() should list the config's custom policy, got:\n%s", out)
	}
	if strings.Count(out, "*") != 1 {
		t.Errorf("exactly one variant should be marked, got:\n%s", out)
	}
}
