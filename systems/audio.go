package systems

import (
	"bytes"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio context - created once and shared across restarts
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio drains pending tone requests and starts asynchronous
// playback for each. Runs outside the playback engine's dispatch so
// tone synthesis never delays a tick; audio failures are logged and
// swallowed, the visualization keeps going silently.
func UpdateAudio(e *ecs.ECS) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(audioEntry)
	if len(audioData.PendingTones) == 0 {
		return
	}

	arrayLen := 0
	if barsEntry, ok := components.Bars.First(e.World); ok {
		arrayLen = len(components.Bars.Get(barsEntry).Values)
	}

	for _, req := range audioData.PendingTones {
		if !audioData.Enabled {
			continue
		}
		playTone(audioData, ToneFrequency(req.Distance, arrayLen))
	}
	audioData.PendingTones = audioData.PendingTones[:0]
}

// ToneFrequency maps a swap distance to a pitch in Hz: 200 Hz for
// adjacent elements rising linearly to 800 Hz once the distance spans
// the whole array.
func ToneFrequency(distance, arrayLen int) int {
	if distance > arrayLen {
		distance = arrayLen
	}
	div := arrayLen
	if div < 1 {
		div = 1
	}
	return cfg.Audio.BaseFreq + cfg.Audio.FreqSpan*distance/div
}

// playTone hands a synthesized tone to the audio context. Playback is
// fire and forget; ebiten streams it on its own goroutine.
func playTone(audioData *components.AudioData, freqHz int) {
	initGlobalAudio()
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
	}
	if audioData.Context == nil {
		return
	}

	pcm := SynthTone(freqHz, cfg.Audio.ToneDurationMs, cfg.Audio.SampleRate, audioData.Volume)
	player, err := audioData.Context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("audio unavailable: %v", err)
		return
	}
	player.Play()
}

// SynthTone renders a sine tone as 16-bit little-endian stereo PCM.
// A short linear fade-in and fade-out (FadeLength frames) keeps the
// tone from clicking at its edges.
func SynthTone(freqHz, durationMs, sampleRate int, volume float64) []byte {
	frames := sampleRate * durationMs / 1000
	fade := FadeLength(frames)
	buf := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		angle := 2 * math.Pi * float64(freqHz) * float64(i) / float64(sampleRate)

		envelope := 1.0
		if fade > 0 {
			if i < fade {
				envelope = float64(i) / float64(fade)
			} else if i > frames-fade {
				envelope = float64(frames-i) / float64(fade)
			}
		}

		sample := int16(math.Sin(angle) * envelope * volume * math.MaxInt16)
		lo, hi := byte(sample), byte(sample>>8)
		buf[i*4+0] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return buf
}

// FadeLength returns the envelope ramp in frames: a seventh of the
// buffer, capped at the configured maximum.
func FadeLength(frames int) int {
	fade := frames / 7
	if fade > cfg.Audio.MaxFadeSamples {
		fade = cfg.Audio.MaxFadeSamples
	}
	return fade
}
