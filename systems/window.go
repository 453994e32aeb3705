package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/browser"
)

// Window and browser calls, replaced in tests.
var (
	isFullscreen  = ebiten.IsFullscreen
	setFullscreen = ebiten.SetFullscreen
	openURL       = browser.OpenURL
)
