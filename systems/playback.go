package systems

import (
	"image/color"
	"log"

	"github.com/mpaiva/sortviz/colorfx"
	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayback is the animation engine tick. Each effective tick
// plays exactly one stage of the front action: render with the
// pre-advance stage value, advance, pop on completion. Stages of the
// front action always finish before the next action starts.
func UpdatePlayback(e *ecs.ECS) {
	pbEntry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(pbEntry)
	if pb.Halted {
		return
	}

	pb.FrameCounter++
	if cfg.C.FrameSkip > 1 && pb.FrameCounter%uint64(cfg.C.FrameSkip) != 0 {
		return
	}

	if pb.Mode == components.ModeIdle {
		return
	}
	// A manual step consumes its tick even when the queue is empty.
	if pb.Mode == components.ModeStepPending {
		defer func() { pb.Mode = components.ModeIdle }()
	}

	// A panic in a stage renderer kills the run, not the process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("playback halted: %v", r)
			pb.Halted = true
			pb.Mode = components.ModeIdle
		}
	}()

	playFrontStage(e)
}

// playFrontStage renders one stage of the queue's front action.
// An empty queue is a no-op, not an error.
func playFrontStage(e *ecs.ECS) {
	queueEntry, ok := components.Queue.First(e.World)
	if !ok {
		return
	}
	queue := components.Queue.Get(queueEntry)

	act := queue.Peek()
	if act == nil {
		return
	}

	barsEntry, _ := components.Bars.First(e.World)
	bars := components.Bars.Get(barsEntry)
	dispEntry, _ := components.Display.First(e.World)
	disp := components.Display.Get(dispEntry)

	var done bool
	switch act.Kind {
	case components.ActionSwap:
		done = playSwapStage(e, act, bars, disp)
	case components.ActionPivot:
		done = playPivotStage(act, bars, disp)
	case components.ActionCompare:
		done = playCompareStage(act, disp)
	default:
		done = act.Advance()
	}

	if done {
		queue.Pop()
	}
}

// playSwapStage pulses both bars through the darkening envelope. At the
// exact midpoint stage, and only then, the rendered array entries are
// exchanged, one tone request is emitted and both columns are wiped
// before redrawing at their new heights. The midpoint gate keeps the
// mutation and the tone at exactly once per swap.
func playSwapStage(e *ecs.ECS, act *components.Action, bars *components.BarsData, disp *components.DisplayData) bool {
	clr := colorfx.StagePulse(cfg.Colors.Bar, act.Stage, act.TotalStages)

	if act.Stage == act.TotalStages/2 {
		bars.Swap(act.IndexA, act.IndexB)

		distance := act.IndexB - act.IndexA
		if distance < 0 {
			distance = -distance
		}
		requestTone(e, distance)

		disp.Surface.ClearRectangle(act.IndexA, 0, 1, disp.Rows-1)
		disp.Surface.ClearRectangle(act.IndexB, 0, 1, disp.Rows-1)
	}

	drawBar(disp, bars, act.IndexA, clr)
	drawBar(disp, bars, act.IndexB, clr)
	return act.Advance()
}

// playPivotStage strobes the pivot bar, alternating base and inverted
// color by stage parity. No array mutation.
func playPivotStage(act *components.Action, bars *components.BarsData, disp *components.DisplayData) bool {
	clr := cfg.Colors.Bar
	if act.Stage%2 == 0 {
		clr = colorfx.Invert(clr)
	}
	drawBar(disp, bars, act.IndexA, clr)
	return act.Advance()
}

// playCompareStage marks the two compared columns with triangle
// glyphs on the baseline and repaints every other column's marker
// neutral. Markers clear on the final stage. No mutation, no sound.
func playCompareStage(act *components.Action, disp *components.DisplayData) bool {
	markerRow := disp.Rows - 1

	for col := 0; col < disp.Cols; col++ {
		if col != act.IndexA && col != act.IndexB {
			disp.Surface.DrawTriangleMarker(col, markerRow, cfg.Colors.Baseline)
		}
	}

	if act.Stage > 1 {
		disp.Surface.DrawTriangleMarker(act.IndexA, markerRow, cfg.Colors.MarkerA)
		disp.Surface.DrawTriangleMarker(act.IndexB, markerRow, cfg.Colors.MarkerB)
	} else {
		disp.Surface.DrawTriangleMarker(act.IndexA, markerRow, cfg.Colors.Baseline)
		disp.Surface.DrawTriangleMarker(act.IndexB, markerRow, cfg.Colors.Baseline)
	}
	return act.Advance()
}

// drawBar renders one column at its current height in the given color.
func drawBar(disp *components.DisplayData, bars *components.BarsData, index int, clr color.RGBA) {
	value := bars.Values[index]
	disp.Surface.DrawRectangle(index, disp.Rows-value-1, 1, value, true, true, clr)
}

// requestTone queues one swap tone for the audio system; actual
// synthesis and playback happen outside the animation tick.
func requestTone(e *ecs.ECS, distance int) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(audioEntry)
	audio.PendingTones = append(audio.PendingTones, components.ToneRequest{Distance: distance})
}
