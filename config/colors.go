package config

import "image/color"

// ColorConfig contains every color used by the visualizer
type ColorConfig struct {
	Bar        color.RGBA // array bars
	Background color.RGBA // canvas background
	Baseline   color.RGBA // strip under the bars, also the neutral marker color
	MarkerA    color.RGBA // comparison marker, first index
	MarkerB    color.RGBA // comparison marker, second index
	Sweep      color.RGBA // completion sweep highlight
	Frame      color.RGBA // one pixel frame around each bar cell
}

var Colors ColorConfig

func init() {
	Colors = ColorConfig{
		Bar:        color.RGBA{77, 153, 230, 255},
		Background: color.RGBA{211, 211, 211, 255},
		Baseline:   color.RGBA{173, 216, 230, 255},
		MarkerA:    color.RGBA{0, 100, 0, 255},
		MarkerB:    color.RGBA{0, 0, 255, 255},
		Sweep:      color.RGBA{40, 200, 80, 255},
		Frame:      color.RGBA{0, 0, 0, 255},
	}
}
