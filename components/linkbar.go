package components

import (
	"github.com/automoto/showcase/ui"
	"github.com/yohamta/donburi"
)

// LinkBarData wraps the controller link bar widgets
type LinkBarData struct {
	Bar *ui.LinkBar
}

var LinkBar = donburi.NewComponentType[LinkBarData]()
