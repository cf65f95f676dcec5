package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// ToneRequest asks the audio system for one swap tone. The distance
// between the swapped indices picks the pitch.
type ToneRequest struct {
	Distance int
}

// AudioData stores audio state (singleton component). Playback appends
// tone requests here; UpdateAudio drains them, so tone synthesis never
// runs inside the animation tick.
type AudioData struct {
	Context      *audio.Context
	Enabled      bool
	Volume       float64 // 0.0 - 1.0
	PendingTones []ToneRequest
}

var Audio = donburi.NewComponentType[AudioData]()
