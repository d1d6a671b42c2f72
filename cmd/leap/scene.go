package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/registry"
	"github.com/vovakirdan/leapengine/internal/world"
)

// sourceIsFile reports whether a config source names a real file.
func sourceIsFile(source string) bool {
	return source != "embedded" && source != "builtin"
}

// variantArg returns the optional variant argument, or "".
func variantArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// buildScene creates the scene for variant, or uses the config's own
// policy when variant is empty.
func buildScene(cfg config.WorldConfig, variant string) (registry.Scene, error) {
	if variant == "" {
		w, err := world.New(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return registry.Create(variant, cfg)
}

// loadScene resolves the config and builds the initial scene.
func loadScene(logger *log.Logger, variant string) (registry.Scene, string, error) {
	if variant != "" && !registry.Exists(variant) {
		return nil, "", fmt.Errorf("unknown variant %q (run 'leap list')", variant)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, source, err
	}
	scene, err := buildScene(cfg, variant)
	if err != nil {
		return nil, source, err
	}

	logger.Info("world loaded",
		"variant", scene.ID(),
		"source", source,
		"platforms", len(cfg.Platforms),
		"size", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height))
	return scene, source, nil
}

// reloader rebuilds scenes from a watched config file.
type reloader struct {
	watcher *config.Watcher
	scenes  chan registry.Scene
	done    chan struct{}
	wg      sync.WaitGroup
}

// startReload watches source when --watch is set. It returns a nil
// reloader when watching is off.
func startReload(logger *log.Logger, source, variant string) (*reloader, error) {
	if !flagWatch {
		return nil, nil
	}
	if !sourceIsFile(source) {
		return nil, errors.New("--watch needs a config file; the world came from the " + source + " default")
	}

	w, err := config.NewWatcher(source)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", source, err)
	}

	r := &reloader{
		watcher: w,
		scenes:  make(chan registry.Scene, 1),
		done:    make(chan struct{}),
	}
	r.wg.Add(1)
	go r.run(logger, variant)
	logger.Info("watching config", "path", w.Path())
	return r, nil
}

func (r *reloader) run(logger *log.Logger, variant string) {
	defer r.wg.Done()
	for u := range r.watcher.Updates {
		if u.Err != nil {
			logger.Warn("config reload failed, keeping current world", "path", u.Path, "err", u.Err)
			continue
		}
		scene, err := buildScene(u.Config, variant)
		if err != nil {
			logger.Warn("config reload failed, keeping current world", "path", u.Path, "err", err)
			continue
		}
		select {
		case r.scenes <- scene:
		case <-r.done:
			return
		}
	}
}

// Scenes returns the channel of rebuilt scenes; nil when not watching.
func (r *reloader) Scenes() <-chan registry.Scene {
	if r == nil {
		return nil
	}
	return r.scenes
}

// Close stops watching.
func (r *reloader) Close() {
	if r == nil {
		return
	}
	close(r.done)
	_ = r.watcher.Close()
	r.wg.Wait()
}
