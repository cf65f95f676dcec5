package systems

import (
	"log"
	"math/rand"

	"github.com/mpaiva/sortviz/canvas"
	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/mpaiva/sortviz/sorting"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// queueSink adapts the action queue to the sorting.Sink the algorithms
// emit into. Actions land on the queue in the exact order the
// algorithm performed its operations.
type queueSink struct {
	queue *components.QueueData
}

func (s queueSink) Compare(i, j int) {
	s.queue.Push(components.NewAction(components.ActionCompare, i, j))
}

func (s queueSink) Pivot(i int) {
	s.queue.Push(components.NewAction(components.ActionPivot, i, 0))
}

func (s queueSink) Swap(i, j int) {
	s.queue.Push(components.NewAction(components.ActionSwap, i, j))
}

// Restart discards any in-flight animation and starts a fresh run of
// the selected algorithm: the queue is cleared and playback forced
// idle unconditionally, then the logical array is either regenerated
// or seeded from whatever the rendered array currently shows, the
// canvas is repainted, and the driver runs to completion, front
// loading the queue.
func Restart(e *ecs.ECS, regenerate bool) {
	pb := components.Playback.Get(mustFirst(e, components.Playback))
	queue := components.Queue.Get(mustFirst(e, components.Queue))
	srt := components.Sort.Get(mustFirst(e, components.Sort))
	bars := components.Bars.Get(mustFirst(e, components.Bars))
	disp := components.Display.Get(mustFirst(e, components.Display))

	queue.Clear()
	pb.Mode = components.ModeIdle
	pb.Halted = false

	if sweepEntry, ok := components.Sweep.First(e.World); ok {
		sweep := components.Sweep.Get(sweepEntry)
		*sweep = components.SweepData{}
	}

	if regenerate {
		count := disp.Cols - 2
		maxValue := disp.Rows - 10
		if count < 0 {
			count = 0
		}
		if maxValue < 1 {
			maxValue = 1
		}
		srt.Values = make([]int, count)
		bars.Values = make([]int, count)
		for i := range srt.Values {
			srt.Values[i] = rand.Intn(maxValue)
			bars.Values[i] = srt.Values[i]
		}
	} else {
		// Re-sort whatever is on screen, including a partially played
		// back state.
		srt.Values = make([]int, len(bars.Values))
		copy(srt.Values, bars.Values)
	}

	log.Printf("restarting with %s, %d elements", srt.Algorithm, len(srt.Values))
	RedrawBars(disp, bars)

	sorting.Run(srt.Algorithm, srt.Values, queueSink{queue: queue})

	if sweepEntry, ok := components.Sweep.First(e.World); ok {
		components.Sweep.Get(sweepEntry).Armed = !queue.Empty()
	}
}

// RunContinuous starts continuous playback.
func RunContinuous(e *ecs.ECS) {
	pb := components.Playback.Get(mustFirst(e, components.Playback))
	if pb.Halted {
		return
	}
	pb.Mode = components.ModeContinuous
}

// Pause stops continuous playback, keeping the queue intact.
func Pause(e *ecs.ECS) {
	pb := components.Playback.Get(mustFirst(e, components.Playback))
	if pb.Mode == components.ModeContinuous {
		pb.Mode = components.ModeIdle
	}
}

// SingleStep schedules exactly one action stage on the next tick.
func SingleStep(e *ecs.ECS) {
	pb := components.Playback.Get(mustFirst(e, components.Playback))
	if pb.Halted || pb.Mode == components.ModeContinuous {
		return
	}
	pb.Mode = components.ModeStepPending
}

// SelectAlgorithm switches the driver's algorithm and restarts over
// the currently displayed values, matching the dropdown behavior.
func SelectAlgorithm(e *ecs.ECS, a sorting.Algorithm) {
	if !a.Valid() {
		return
	}
	srt := components.Sort.Get(mustFirst(e, components.Sort))
	srt.Algorithm = a
	Restart(e, false)
	SaveCurrentSettings(e)
}

// RedrawBars repaints the full canvas: background, every bar at its
// rendered height, and the baseline strip.
func RedrawBars(disp *components.DisplayData, bars *components.BarsData) {
	disp.Surface.ClearRectangle(0, 0, disp.Cols, disp.Rows)
	for i, v := range bars.Values {
		disp.Surface.DrawRectangle(i, disp.Rows-v-1, 1, v, true, true, cfg.Colors.Bar)
	}
	disp.Surface.DrawRectangle(0, disp.Rows-1, disp.Cols, 1, true, true, cfg.Colors.Baseline)
}

// NewWorldEntities creates the singleton components a visualizer
// session needs. The queue lives here, scoped to the session, and is
// shared with the driver only through Restart.
func NewWorldEntities(e *ecs.ECS, surface canvas.Surface) {
	cols, rows := surface.Size()

	e.World.Create(components.Playback)
	e.World.Create(components.Queue)
	e.World.Create(components.Bars)
	e.World.Create(components.Sort)
	e.World.Create(components.Sweep)

	dispEntry := e.World.Entry(e.World.Create(components.Display))
	components.Display.Set(dispEntry, &components.DisplayData{
		Surface: surface,
		Cols:    cols,
		Rows:    rows,
	})

	audioEntry := e.World.Entry(e.World.Create(components.Audio))
	components.Audio.Set(audioEntry, &components.AudioData{
		Enabled: cfg.C.Sound,
		Volume:  cfg.Audio.ToneVolume,
	})
}

// mustFirst returns the singleton entry for a component type; the
// scene creates every singleton before any system runs.
func mustFirst[T any](e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	entry, ok := c.First(e.World)
	if !ok {
		panic("missing singleton component")
	}
	return entry
}
