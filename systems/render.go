package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mpaiva/sortviz/components"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawCanvas blits the grid canvas to the screen. The stage renderers
// paint onto the offscreen frame during Update; Draw only copies it.
func DrawCanvas(e *ecs.ECS, screen *ebiten.Image) {
	dispEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	disp := components.Display.Get(dispEntry)
	if disp.Frame == nil {
		return
	}

	drawOp.GeoM.Reset()
	screen.DrawImage(disp.Frame, drawOp)
}
