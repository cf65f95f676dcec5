package config

import (
	"log"
	"strconv"
	"strings"
)

// Config contains window and playback configuration values
type Config struct {
	// Window dimensions in pixels (canvas area, toolbar excluded)
	Width  int
	Height int

	// Sound toggles the audio collaborator entirely
	Sound bool

	// FrameSkip throttles the playback tick: the engine advances one
	// animation stage every FrameSkip display frames
	FrameSkip int

	// ToolbarHeight is the control strip below the canvas
	ToolbarHeight int

	// DefaultAlgorithm is the sorting.Algorithm ordinal selected at
	// startup, overridden by saved settings
	DefaultAlgorithm int
}

var C Config

func init() {
	C = Config{
		Width:         800,
		Height:        600,
		Sound:         true,
		FrameSkip:     1,
		ToolbarHeight: 32,
	}
}

// ApplyArgs layers command line overrides on top of the defaults.
// Recognized options: -width=N -height=N -sound=BOOL. Invalid values
// fall back to the defaults with a warning, never an error.
func ApplyArgs(args []string) {
	for _, arg := range args {
		key, value, ok := splitArg(arg)
		if !ok {
			continue
		}
		switch key {
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				C.Width = n
			} else {
				log.Printf("Warning: invalid width %q, using default %d", value, C.Width)
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				C.Height = n
			} else {
				log.Printf("Warning: invalid height %q, using default %d", value, C.Height)
			}
		case "sound":
			if b, err := strconv.ParseBool(value); err == nil {
				C.Sound = b
			} else {
				log.Printf("Warning: invalid sound option %q, using default %v", value, C.Sound)
			}
		}
	}
}

func splitArg(arg string) (key, value string, ok bool) {
	arg = strings.TrimLeft(arg, "-")
	key, value, ok = strings.Cut(arg, "=")
	return key, value, ok
}
