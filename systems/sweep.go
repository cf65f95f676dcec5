package systems

import (
	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	sweepSeconds = 1.2
	sweepDT      = 1.0 / 60.0
)

// UpdateSweep runs the completion highlight: once an armed queue has
// fully drained, a green sweep tweens across the sorted bars, then
// everything is repainted in the base color.
func UpdateSweep(e *ecs.ECS) {
	sweepEntry, ok := components.Sweep.First(e.World)
	if !ok {
		return
	}
	sweep := components.Sweep.Get(sweepEntry)
	if sweep.Done {
		return
	}

	queue := components.Queue.Get(mustFirst(e, components.Queue))
	bars := components.Bars.Get(mustFirst(e, components.Bars))
	disp := components.Display.Get(mustFirst(e, components.Display))

	if !sweep.Active {
		if !sweep.Armed || !queue.Empty() || len(bars.Values) == 0 {
			return
		}
		sweep.Active = true
		sweep.LastCol = -1
		sweep.Tween = gween.New(0, float32(len(bars.Values)-1), sweepSeconds, ease.Linear)
	}

	pos, finished := sweep.Tween.Update(sweepDT)
	col := int(pos)

	// Repaint the columns the tween crossed this tick.
	for i := sweep.LastCol; i < col; i++ {
		if i >= 0 {
			drawBar(disp, bars, i, cfg.Colors.Bar)
		}
	}
	drawBar(disp, bars, col, cfg.Colors.Sweep)
	sweep.LastCol = col

	if finished {
		drawBar(disp, bars, col, cfg.Colors.Bar)
		sweep.Active = false
		sweep.Armed = false
		sweep.Done = true
	}
}
