package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mpaiva/sortviz/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShortcuts maps keyboard shortcuts onto the control surface,
// mirroring the toolbar buttons: R restarts with a fresh array, space
// toggles continuous playback, S steps once.
func UpdateShortcuts(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		Restart(e, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		pb := components.Playback.Get(mustFirst(e, components.Playback))
		if pb.Mode == components.ModeContinuous {
			Pause(e)
		} else {
			RunContinuous(e)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		SingleStep(e)
	}
}
