package systems

import (
	"log"

	"github.com/automoto/showcase/commands"
	"github.com/automoto/showcase/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeCommands registers the command handler on the world's bus. Call
// it once per world.
func SubscribeCommands(w donburi.World) {
	commands.Bus.Subscribe(w, handleCommand)
}

// ProcessCommands applies the commands queued since the last tick. It runs
// before the animation advance so a click is felt on the same tick.
func ProcessCommands(ecs *ecs.ECS) {
	commands.Process(ecs.World)
}

func handleCommand(w donburi.World, cmd commands.Command) {
	pg := pagesOf(w)
	if pg == nil {
		return
	}
	if pg.Attached != nil && pg.Attached.Apply(cmd) {
		return
	}

	switch c := cmd.(type) {
	case commands.TriggerColorPulse:
		m := motionOf(w)
		if c.Index < 0 || c.Index >= motion.NumColors {
			log.Printf("Warning: color pulse for unknown color %d", c.Index)
			return
		}
		m.Shared.Color(c.Index).Advance(c.Amount)
	case commands.TriggerAccel:
		if imp := impulseFor(motionOf(w).Shared, c.Target); imp != nil {
			imp.Trigger(c.Amount)
		}
	case commands.RequestPageLoad:
		RequestPage(w, c.Key)
	case commands.OpenURL:
		if err := openURL(c.URL); err != nil {
			log.Printf("Warning: Could not open link: %v", err)
		}
	case commands.ToggleFullscreen:
		fullscreen := !isFullscreen()
		setFullscreen(fullscreen)
		if lb := linkBarOf(w); lb != nil && lb.Bar != nil {
			lb.Bar.SetFullscreen(fullscreen)
		}
	}
}

// impulseFor maps a shared accel target to its impulse. Spinner accels are
// page-local and have none.
func impulseFor(m *motion.Shared, target commands.Accel) *motion.Impulse {
	switch target {
	case commands.AccelTitle:
		return m.Title
	case commands.AccelGlow:
		return m.Glow
	case commands.AccelSlogan:
		return m.Slogan
	case commands.AccelFractal:
		return m.Julia
	}
	return nil
}
