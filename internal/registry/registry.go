// Package registry provides a global registry for world variants.
// Variants register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/leapengine/internal/config"
	"github.com/vovakirdan/leapengine/internal/core"
)

// Scene is what the frame loop drives.
// Scenes contain pure logic with no external dependencies.
// The platform handles input mapping, timing, and presentation.
type Scene interface {
	// ID returns the variant identifier (e.g., "classic", "oneway").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Step advances the simulation by one frame.
	// now is only used for wall-clock timed mechanics (jump charge).
	Step(in core.InputState, now time.Time) core.StepResult

	// Render paints the scene into dst. dst is pre-cleared.
	Render(dst *core.Framebuffer)

	// Runtime returns the buffer size and background color.
	Runtime() core.RuntimeConfig

	// State returns the current player snapshot.
	State() core.BodyState
}

// Info contains metadata about a registered variant.
type Info struct {
	ID    string
	Title string
}

// Factory builds a scene from a world configuration.
type Factory func(cfg config.WorldConfig) (Scene, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a scene for the variant id from cfg.
// Returns an error if the id is not registered or the factory fails.
func Create(id string, cfg config.WorldConfig) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	s, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
