package config

// AudioConfig contains tone synthesis configuration values
type AudioConfig struct {
	SampleRate int

	// Swap tones map distance to pitch: BaseFreq at distance zero,
	// BaseFreq+FreqSpan once the distance reaches the array length
	BaseFreq int
	FreqSpan int

	// Tone length in milliseconds
	ToneDurationMs int

	// Peak amplitude, 0.0 - 1.0
	ToneVolume float64

	// Fade-in/out cap in sample frames (avoids clicks)
	MaxFadeSamples int
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:     44100,
		BaseFreq:       200,
		FreqSpan:       600,
		ToneDurationMs: 75,
		ToneVolume:     0.45,
		MaxFadeSamples: 20,
	}
}
