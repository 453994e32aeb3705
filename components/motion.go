package components

import (
	"github.com/automoto/showcase/motion"
	"github.com/yohamta/donburi"
)

// MotionData holds the shared colors, impulses and fractal clock
type MotionData struct {
	Shared *motion.Shared
	// Spinner is the rotation of the loading indicator
	Spinner float64
}

var Motion = donburi.NewComponentType[MotionData]()
