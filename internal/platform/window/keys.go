package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/leapengine/internal/core"
)

// keyBindings maps logical inputs to keys. W is both jump and up:
// platformer variants read jump, free roam reads up.
var keyBindings = map[core.Input][]ebiten.Key{
	core.InputLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.InputRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.InputUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.InputDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.InputJump:  {ebiten.KeySpace, ebiten.KeyW},
	core.InputExit:  {ebiten.KeyEscape},
}

// KeyNames returns the bound key names for in, for help text.
func KeyNames(in core.Input) []string {
	keys := keyBindings[in]
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return names
}
