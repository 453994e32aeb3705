package systems

import (
	"github.com/automoto/showcase/commands"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKeys handles the keyboard shortcuts: P pauses, F toggles
// fullscreen and Escape leaves it.
func UpdateKeys(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		TogglePause(ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		commands.Publish(ecs.World, commands.ToggleFullscreen{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && isFullscreen() {
		commands.Publish(ecs.World, commands.ToggleFullscreen{})
	}
}
