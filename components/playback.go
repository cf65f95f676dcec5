package components

import "github.com/yohamta/donburi"

// PlaybackMode governs whether a tick performs work
type PlaybackMode int

const (
	// ModeIdle: ticks are no-ops
	ModeIdle PlaybackMode = iota
	// ModeStepPending: exactly one action stage runs, then back to idle
	ModeStepPending
	// ModeContinuous: one action stage per effective tick
	ModeContinuous
)

func (m PlaybackMode) String() string {
	switch m {
	case ModeStepPending:
		return "step"
	case ModeContinuous:
		return "running"
	default:
		return "paused"
	}
}

// PlaybackData stores the engine's tick state (singleton component)
type PlaybackData struct {
	Mode         PlaybackMode
	FrameCounter uint64

	// Halted is set when a stage renderer panics; playback stays down
	// until the next restart.
	Halted bool
}

var Playback = donburi.NewComponentType[PlaybackData]()
