package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mpaiva/sortviz/components"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudMargin = 6
	hudHeight = 18
)

var (
	hudFace     text.Face
	hudFaceOnce sync.Once
)

func hudFont() text.Face {
	hudFaceOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		hudFace = &text.GoTextFace{Source: source, Size: 12}
	})
	return hudFace
}

// DrawHUD renders the status line in the top-left corner: algorithm,
// playback mode and how many actions are still queued.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	pbEntry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(pbEntry)
	srt := components.Sort.Get(mustFirst(e, components.Sort))
	queue := components.Queue.Get(mustFirst(e, components.Queue))

	status := fmt.Sprintf("%s | %s | %d actions queued", srt.Algorithm, pb.Mode, queue.Len())
	if pb.Halted {
		status = fmt.Sprintf("%s | halted", srt.Algorithm)
	}

	width := float32(len(status)*7 + 2*hudMargin)
	vector.FillRect(screen, 0, 0, width, hudHeight, color.RGBA{0, 0, 0, 180}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, 2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, status, hudFont(), op)
}
