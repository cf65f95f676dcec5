package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SweepData drives the highlight that runs across the bars once a
// queue fully drains (singleton component). Armed is set whenever a
// restart enqueues work; the sweep runs once per drained queue.
type SweepData struct {
	Armed   bool
	Active  bool
	Done    bool
	Tween   *gween.Tween
	LastCol int
}

var Sweep = donburi.NewComponentType[SweepData]()
