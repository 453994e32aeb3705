package systems

import (
	"github.com/automoto/showcase/components"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // captions and labels share the font.Face fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pausedLabel = "PAUSED"

// TogglePause freezes or resumes the animation clock. It does nothing
// unless pausing is enabled in the debug config.
func TogglePause(ecs *ecs.ECS) {
	if !cfg.Debug.PauseEnabled {
		return
	}
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
}

// DrawPause dims the screen and labels it while the clock is frozen.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.PauseOverlay, false)

	if !fonts.Loaded(fonts.Label) {
		return
	}
	face := fonts.Label.Get()
	// approximate width of the 20pt label
	x := int(width)/2 - len(pausedLabel)*6
	text.Draw(screen, pausedLabel, face, x, int(height)/2, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
