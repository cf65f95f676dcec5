package systems

import (
	"image/color"
	"math/rand"
	"sort"
	"testing"

	"github.com/mpaiva/sortviz/components"
	"github.com/mpaiva/sortviz/sorting"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeSurface records drawing calls so engine tests run headless.
type fakeSurface struct {
	cols, rows int
	rects      int
	clears     int
	markers    int
}

func (f *fakeSurface) DrawRectangle(x, y, w, h int, frame, spacing bool, c color.RGBA) {
	f.rects++
}
func (f *fakeSurface) ClearRectangle(x, y, w, h int) { f.clears++ }

func (f *fakeSurface) DrawTriangleMarker(x, y int, c color.RGBA) { f.markers++ }

func (f *fakeSurface) Size() (int, int) { return f.cols, f.rows }

func newTestECS(values []int) (*ecs.ECS, *fakeSurface) {
	e := ecs.NewECS(donburi.NewWorld())
	surface := &fakeSurface{cols: 48, rows: 36}
	NewWorldEntities(e, surface)

	bars := components.Bars.Get(mustFirst(e, components.Bars))
	srt := components.Sort.Get(mustFirst(e, components.Sort))
	bars.Values = append([]int(nil), values...)
	srt.Values = append([]int(nil), values...)
	return e, surface
}

func getState(e *ecs.ECS) (*components.PlaybackData, *components.QueueData, *components.BarsData, *components.SortData, *components.AudioData) {
	return components.Playback.Get(mustFirst(e, components.Playback)),
		components.Queue.Get(mustFirst(e, components.Queue)),
		components.Bars.Get(mustFirst(e, components.Bars)),
		components.Sort.Get(mustFirst(e, components.Sort)),
		components.Audio.Get(mustFirst(e, components.Audio))
}

func drain(t *testing.T, e *ecs.ECS) {
	t.Helper()
	pb, queue, _, _, _ := getState(e)
	pb.Mode = components.ModeContinuous
	for i := 0; i < 1_000_000; i++ {
		if queue.Empty() {
			return
		}
		UpdatePlayback(e)
	}
	t.Fatal("queue did not drain")
}

func TestIdleTickIsNoOp(t *testing.T) {
	e, surface := newTestECS([]int{3, 1, 2})
	_, queue, _, _, _ := getState(e)
	queue.Push(components.NewAction(components.ActionPivot, 0, 0))

	UpdatePlayback(e)

	if queue.Len() != 1 || queue.Peek().Stage != queue.Peek().TotalStages {
		t.Error("idle tick must not touch the queue")
	}
	if surface.rects != 0 {
		t.Error("idle tick must not draw")
	}
}

func TestEmptyQueueTickIsNoOp(t *testing.T) {
	e, surface := newTestECS([]int{3, 1, 2})
	pb, _, bars, _, audioData := getState(e)
	pb.Mode = components.ModeContinuous

	UpdatePlayback(e)

	if surface.rects != 0 || surface.clears != 0 || len(audioData.PendingTones) != 0 {
		t.Error("empty queue tick produced side effects")
	}
	if bars.Values[0] != 3 {
		t.Error("empty queue tick mutated the rendered array")
	}
	if pb.Mode != components.ModeContinuous {
		t.Error("continuous mode must survive an empty tick")
	}
}

func TestSwapMidpointGate(t *testing.T) {
	for _, total := range []int{2, 4, 10} {
		e, _ := newTestECS([]int{5, 9})
		pb, queue, bars, _, audioData := getState(e)
		pb.Mode = components.ModeContinuous

		queue.Push(&components.Action{
			Kind:        components.ActionSwap,
			IndexA:      0,
			IndexB:      1,
			Stage:       total,
			TotalStages: total,
		})

		for tick := 0; tick < total; tick++ {
			preStage := total - tick
			wasSwapped := bars.Values[0] == 9
			tones := len(audioData.PendingTones)

			UpdatePlayback(e)

			nowSwapped := bars.Values[0] == 9
			if preStage == total/2 {
				if wasSwapped || !nowSwapped {
					t.Errorf("T=%d: mutation not at midpoint stage %d", total, preStage)
				}
				if len(audioData.PendingTones) != tones+1 {
					t.Errorf("T=%d: tone not emitted at midpoint", total)
				}
			} else if nowSwapped != wasSwapped {
				t.Errorf("T=%d: mutation at stage %d", total, preStage)
			} else if len(audioData.PendingTones) != tones {
				t.Errorf("T=%d: tone at stage %d", total, preStage)
			}
		}

		if !queue.Empty() {
			t.Errorf("T=%d: action not popped after %d ticks", total, total)
		}
		if len(audioData.PendingTones) != 1 {
			t.Errorf("T=%d: %d tones, want exactly 1", total, len(audioData.PendingTones))
		}
		if audioData.PendingTones[0].Distance != 1 {
			t.Errorf("T=%d: distance = %d, want 1", total, audioData.PendingTones[0].Distance)
		}
	}
}

func TestActionsPlayStrictlyInOrder(t *testing.T) {
	e, _ := newTestECS([]int{5, 9, 2})
	pb, queue, _, _, _ := getState(e)
	pb.Mode = components.ModeContinuous

	queue.Push(components.NewAction(components.ActionSwap, 0, 1))  // 10 stages
	queue.Push(components.NewAction(components.ActionPivot, 2, 0)) // 2 stages

	for tick := 1; tick <= 9; tick++ {
		UpdatePlayback(e)
		if queue.Len() != 2 {
			t.Fatalf("tick %d: front action finished early", tick)
		}
	}
	UpdatePlayback(e)
	if queue.Len() != 1 {
		t.Fatal("swap should complete on its tenth stage")
	}
	UpdatePlayback(e)
	UpdatePlayback(e)
	if !queue.Empty() {
		t.Fatal("pivot should complete after two more ticks")
	}
}

func TestSingleStepRunsExactlyOneStage(t *testing.T) {
	e, _ := newTestECS([]int{5, 9})
	_, queue, _, _, _ := getState(e)
	queue.Push(components.NewAction(components.ActionPivot, 0, 0))

	SingleStep(e)
	UpdatePlayback(e)

	pb, _, _, _, _ := getState(e)
	if pb.Mode != components.ModeIdle {
		t.Error("step must reset the mode to idle")
	}
	if queue.Peek().Stage != 1 {
		t.Errorf("stage = %d after one step, want 1", queue.Peek().Stage)
	}

	// No further progress without another step.
	UpdatePlayback(e)
	if queue.Peek().Stage != 1 {
		t.Error("idle tick after a step still advanced the action")
	}
}

func TestRestartClearsMidPlayback(t *testing.T) {
	values := []int{4, 2, 7, 1, 9, 3}
	e, _ := newTestECS(values)
	pb, queue, _, _, _ := getState(e)

	Restart(e, false)
	if queue.Empty() {
		t.Fatal("driver should front-load the queue")
	}
	RunContinuous(e)
	for i := 0; i < 7; i++ {
		UpdatePlayback(e)
	}

	// Restart discards the in-flight action's progress and goes idle.
	Restart(e, false)
	if pb.Mode != components.ModeIdle {
		t.Error("restart must force idle")
	}
	if pb.Halted {
		t.Error("restart must clear the halted flag")
	}
	// The driver re-ran, so the queue holds only fresh actions with
	// untouched stage cursors.
	if front := queue.Peek(); front != nil && front.Stage != front.TotalStages {
		t.Error("stale stage progress leaked into the new run")
	}
}

func TestStepAfterEmptyRestartIsNoOp(t *testing.T) {
	e, _ := newTestECS([]int{7})
	pb, queue, bars, _, audioData := getState(e)

	Restart(e, false) // single element: nothing to enqueue
	if !queue.Empty() {
		t.Fatal("single element run should enqueue nothing")
	}

	SingleStep(e)
	UpdatePlayback(e)

	if pb.Mode != components.ModeIdle {
		t.Error("step on an empty queue must settle back to idle")
	}
	if bars.Values[0] != 7 || len(audioData.PendingTones) != 0 {
		t.Error("step on an empty queue produced side effects")
	}
}

func TestFullDrainMatchesLogicalArray(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	long := make([]int, 50)
	for i := range long {
		long[i] = rng.Intn(12) // duplicates on purpose
	}

	inputs := [][]int{{}, {7}, {2, 1}, long}

	for _, a := range sorting.Algorithms {
		for _, input := range inputs {
			e, _ := newTestECS(input)
			_, _, bars, srt, _ := getState(e)
			srt.Algorithm = a

			Restart(e, false)
			drain(t, e)

			if len(bars.Values) != len(srt.Values) {
				t.Fatalf("%s: rendered and logical lengths differ", a)
			}
			for i := range bars.Values {
				if bars.Values[i] != srt.Values[i] {
					t.Errorf("%s: rendered %v != logical %v", a, bars.Values, srt.Values)
					break
				}
			}
			if !sort.IntsAreSorted(bars.Values) {
				t.Errorf("%s: rendered array not sorted: %v", a, bars.Values)
			}
		}
	}
}

func TestBubbleScenarioDrain(t *testing.T) {
	e, _ := newTestECS([]int{5, 3, 8, 1})
	_, _, bars, srt, _ := getState(e)
	srt.Algorithm = sorting.BubbleSort

	Restart(e, false)
	drain(t, e)

	want := []int{1, 3, 5, 8}
	for i, v := range want {
		if bars.Values[i] != v {
			t.Fatalf("rendered = %v, want %v", bars.Values, want)
		}
	}
}

func TestOneToneForOneSwap(t *testing.T) {
	e, _ := newTestECS([]int{2, 1})
	_, _, _, srt, audioData := getState(e)
	srt.Algorithm = sorting.BubbleSort

	Restart(e, false)
	drain(t, e)

	if len(audioData.PendingTones) != 1 {
		t.Errorf("%d tones for a single swap", len(audioData.PendingTones))
	}
}

func TestPanicHaltsPlayback(t *testing.T) {
	e, _ := newTestECS([]int{1, 2})
	pb, queue, _, _, _ := getState(e)

	// Out of range index makes the stage renderer panic.
	queue.Push(components.NewAction(components.ActionSwap, 0, 99))
	pb.Mode = components.ModeContinuous

	UpdatePlayback(e)

	if !pb.Halted {
		t.Fatal("renderer panic must halt playback")
	}
	if pb.Mode != components.ModeIdle {
		t.Error("halted playback must be idle")
	}

	// Halted playback refuses to run until the next restart.
	RunContinuous(e)
	if pb.Mode == components.ModeContinuous {
		t.Error("RunContinuous must not revive a halted run")
	}
	Restart(e, false)
	if pb.Halted {
		t.Error("restart must recover from a halt")
	}
}

func TestRestartRegenerateSizesFromGrid(t *testing.T) {
	e, surface := newTestECS(nil)
	_, queue, bars, srt, _ := getState(e)

	Restart(e, true)

	wantLen := surface.cols - 2
	if len(bars.Values) != wantLen || len(srt.Values) != wantLen {
		t.Fatalf("regenerated %d elements, want %d", len(bars.Values), wantLen)
	}
	maxValue := surface.rows - 10
	for i, v := range bars.Values {
		if v < 0 || v >= maxValue {
			t.Errorf("value %d out of range [0,%d)", v, maxValue)
		}
		if srt.Values[i] != v {
			t.Error("logical and rendered arrays must start identical")
		}
	}
	if queue.Empty() {
		t.Error("regenerating restart should front-load the queue")
	}
}

func TestCompareDrawsAndClearsMarkers(t *testing.T) {
	e, surface := newTestECS([]int{1, 2, 3})
	pb, queue, bars, _, audioData := getState(e)
	queue.Push(components.NewAction(components.ActionCompare, 0, 2))
	pb.Mode = components.ModeContinuous

	UpdatePlayback(e)
	if surface.markers == 0 {
		t.Error("compare stage should draw markers")
	}
	UpdatePlayback(e)

	if !queue.Empty() {
		t.Error("compare should finish after two stages")
	}
	if bars.Values[0] != 1 || len(audioData.PendingTones) != 0 {
		t.Error("compare must not mutate the array or emit sound")
	}
}
