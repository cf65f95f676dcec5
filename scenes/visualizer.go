package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mpaiva/sortviz/canvas"
	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/mpaiva/sortviz/sorting"
	"github.com/mpaiva/sortviz/systems"
	"github.com/mpaiva/sortviz/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// VisualizerScene hosts one sorting visualization session: the ECS
// world with the animation queue and playback engine, plus the
// control toolbar.
type VisualizerScene struct {
	ecs          *ecs.ECS
	controls     *ui.ControlsUI
	sceneChanger SceneChanger
	once         sync.Once
}

func NewVisualizerScene(sc SceneChanger) *VisualizerScene {
	return &VisualizerScene{sceneChanger: sc}
}

func (vs *VisualizerScene) Update() {
	vs.once.Do(vs.configure)
	vs.controls.Update()
	vs.ecs.Update()
}

func (vs *VisualizerScene) Draw(screen *ebiten.Image) {
	// Clear to prevent flashes from the OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
	vs.controls.UI.Draw(screen)
}

func (vs *VisualizerScene) configure() {
	frame := ebiten.NewImage(cfg.C.Width, cfg.C.Height)

	grid, err := canvas.NewGrid(frame, cfg.C.Width, cfg.C.Height, cfg.Colors.Background, cfg.Colors.Frame)
	if err != nil {
		panic("failed to create canvas: " + err.Error())
	}
	grid.Fill()

	e := ecs.NewECS(donburi.NewWorld())
	vs.ecs = e

	systems.NewWorldEntities(e, grid)

	// Attach the on-screen frame to the display singleton.
	dispEntry, _ := components.Display.First(e.World)
	components.Display.Get(dispEntry).Frame = frame

	// Restore the last selected algorithm.
	srtEntry, _ := components.Sort.First(e.World)
	if a := sorting.Algorithm(cfg.C.DefaultAlgorithm); a.Valid() {
		components.Sort.Get(srtEntry).Algorithm = a
	}

	// Audio runs first so tones queued last tick play promptly.
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateShortcuts)
	e.AddSystem(systems.UpdatePlayback)
	e.AddSystem(systems.UpdateSweep)

	e.AddRenderer(cfg.Default, systems.DrawCanvas)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	vs.controls = ui.NewControlsUI(ui.Callbacks{
		OnRestart:   func() { systems.Restart(e, true) },
		OnRun:       func() { systems.RunContinuous(e) },
		OnPause:     func() { systems.Pause(e) },
		OnStep:      func() { systems.SingleStep(e) },
		OnAlgorithm: func(a sorting.Algorithm) { systems.SelectAlgorithm(e, a) },
	})

	log.Printf("visualizer ready: %dx%d canvas, %d columns",
		cfg.C.Width, cfg.C.Height, cfg.C.Width/canvas.CellSize)

	systems.Restart(e, true)
}
