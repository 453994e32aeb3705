// Package commands defines the typed intents produced by pointer clicks and
// the donburi event bus they travel on. Handlers apply them on the main
// goroutine before the animation advance of the same tick.
package commands

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Command is implemented by every command type in this package.
type Command interface {
	command()
}

// Accel names an impulse that a click can kick.
type Accel int

const (
	AccelTitle Accel = iota
	AccelGlow
	AccelSlogan
	AccelFractal
	// AccelSpinner kicks a page-local spinner named by TriggerAccel.Spinner.
	AccelSpinner
)

func (a Accel) String() string {
	switch a {
	case AccelTitle:
		return "title"
	case AccelGlow:
		return "glow"
	case AccelSlogan:
		return "slogan"
	case AccelFractal:
		return "fractal"
	case AccelSpinner:
		return "spinner"
	}
	return "unknown"
}

// TriggerColorPulse advances a shared color by Amount radians.
type TriggerColorPulse struct {
	Index  int
	Amount float64
}

// TriggerAccel feeds an impulse. Set-policy impulses take Amount as their
// new value, additive ones add it.
type TriggerAccel struct {
	Target  Accel
	Spinner string
	Amount  float64
}

// RequestFrameAdvance moves the current page's frame sequencer.
type RequestFrameAdvance struct {
	Offset int
}

// RequestPageLoad loads (if needed) and fades to a page.
type RequestPageLoad struct {
	Key string
}

// FlipRotation reverses a page-local spinner.
type FlipRotation struct {
	Spinner string
}

// AdvanceStory skips to the next caption of the current page's story.
type AdvanceStory struct{}

// OpenURL opens an external link.
type OpenURL struct {
	URL string
}

// ToggleFullscreen flips the window between fullscreen and windowed.
type ToggleFullscreen struct{}

func (TriggerColorPulse) command()   {}
func (TriggerAccel) command()        {}
func (RequestFrameAdvance) command() {}
func (RequestPageLoad) command()     {}
func (FlipRotation) command()        {}
func (AdvanceStory) command()        {}
func (OpenURL) command()             {}
func (ToggleFullscreen) command()    {}

// Bus carries commands. Subscribe a handler once per world and drain it with
// Process.
var Bus = events.NewEventType[Command]()

// Publish queues commands in order.
func Publish(w donburi.World, cmds ...Command) {
	for _, c := range cmds {
		Bus.Publish(w, c)
	}
}

// Process delivers every queued command to the subscribed handlers.
func Process(w donburi.World) {
	Bus.ProcessEvents(w)
}

// Publisher returns a function that queues commands on w.
func Publisher(w donburi.World) func(...Command) {
	return func(cmds ...Command) {
		Publish(w, cmds...)
	}
}
