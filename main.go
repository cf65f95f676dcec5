package main

import (
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/mpaiva/sortviz/scenes"
	"github.com/mpaiva/sortviz/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewVisualizerScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := cfg.C.Width, cfg.C.Height+cfg.C.ToolbarHeight
	g.bounds = image.Rect(0, 0, w, h)
	return w, h
}

func main() {
	cfg.ApplyArgs(os.Args[1:])

	ebiten.SetWindowTitle("sortviz")
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height+cfg.C.ToolbarHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Load saved preferences (sound, volume, algorithm)
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
