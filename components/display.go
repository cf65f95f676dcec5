package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mpaiva/sortviz/canvas"
	"github.com/yohamta/donburi"
)

// DisplayData stores the drawing surface the engine renders stages
// onto, plus the backing frame image blitted to screen each draw
// (singleton component). Frame is nil in headless tests.
type DisplayData struct {
	Surface canvas.Surface
	Frame   *ebiten.Image
	Cols    int
	Rows    int
}

var Display = donburi.NewComponentType[DisplayData]()
