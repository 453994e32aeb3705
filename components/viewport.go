package components

import (
	"github.com/automoto/showcase/layout"
	"github.com/yohamta/donburi"
)

// ViewportData tracks the window size and the layout derived from it
type ViewportData struct {
	Size layout.Size
	// Requested is the last size reported by the window
	Requested layout.Size
	Metrics   layout.Metrics
	Debounce  *layout.Debouncer
	// LaidOut is false until the first layout has been applied
	LaidOut bool
	// Dirty forces a relayout on the next tick, skipping the debounce
	Dirty bool
}

var Viewport = donburi.NewComponentType[ViewportData]()
