package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/mpaiva/sortviz/sorting"
	"golang.org/x/image/font/gofont/goregular"
)

// Callbacks routes toolbar interactions into the control surface.
type Callbacks struct {
	OnRestart   func()
	OnRun       func()
	OnPause     func()
	OnStep      func()
	OnAlgorithm func(sorting.Algorithm)
}

// ControlsUI holds the ebitenui toolbar below the canvas: transport
// buttons plus an algorithm cycle button.
type ControlsUI struct {
	UI        *ebitenui.UI
	callbacks Callbacks

	algorithm       sorting.Algorithm
	algorithmButton *widget.Button

	normalFace text.Face
}

// NewControlsUI builds the toolbar.
func NewControlsUI(cb Callbacks) *ControlsUI {
	cui := &ControlsUI{
		callbacks: cb,
		algorithm: sorting.Algorithm(cfg.C.DefaultAlgorithm),
	}
	cui.loadFonts()
	cui.buildUI()
	return cui
}

func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Toolbar row pinned to the bottom edge.
	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	toolbar.AddChild(cui.newButton("Restart", func() {
		if cui.callbacks.OnRestart != nil {
			cui.callbacks.OnRestart()
		}
	}))
	toolbar.AddChild(cui.newButton("Run", func() {
		if cui.callbacks.OnRun != nil {
			cui.callbacks.OnRun()
		}
	}))
	toolbar.AddChild(cui.newButton("Pause", func() {
		if cui.callbacks.OnPause != nil {
			cui.callbacks.OnPause()
		}
	}))
	toolbar.AddChild(cui.newButton("Step", func() {
		if cui.callbacks.OnStep != nil {
			cui.callbacks.OnStep()
		}
	}))

	cui.algorithmButton = cui.newButton(cui.algorithm.String(), func() {
		cui.algorithm = sorting.Algorithms[(int(cui.algorithm)+1)%len(sorting.Algorithms)]
		if textWidget := cui.algorithmButton.Text(); textWidget != nil {
			textWidget.Label = cui.algorithm.String()
		}
		if cui.callbacks.OnAlgorithm != nil {
			cui.callbacks.OnAlgorithm(cui.algorithm)
		}
	})
	toolbar.AddChild(cui.algorithmButton)

	rootContainer.AddChild(toolbar)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 24)),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
