// Package canvas draws the visualizer's cell grid. Everything is
// addressed in fixed size cells; the playback engine only sees the
// Surface interface, so tests can substitute a recording fake.
package canvas

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CellSize is the edge length of one grid cell in pixels.
const CellSize = 16

// Surface is the pixel grid the engine renders onto. Coordinates are
// cells, not pixels; writes never bleed into neighboring cells.
type Surface interface {
	// DrawRectangle fills a cell rectangle. With frame, a one pixel
	// border is drawn around it; with spacing, the leftmost pixel
	// column and bottom pixel row are left untouched so adjacent bars
	// stay visually separate.
	DrawRectangle(x, y, w, h int, frame, spacing bool, c color.RGBA)
	// ClearRectangle fills a cell rectangle with the background color.
	ClearRectangle(x, y, w, h int)
	// DrawTriangleMarker draws a small upward pointing triangle inside
	// one cell.
	DrawTriangleMarker(x, y int, c color.RGBA)
	// Size returns the grid dimensions in cells.
	Size() (cols, rows int)
}

// Grid implements Surface on top of an ebiten image.
type Grid struct {
	target     *ebiten.Image
	width      int
	height     int
	cols       int
	rows       int
	background color.RGBA
	frameColor color.RGBA
}

// NewGrid wraps target in a cell grid. The target must be non-nil and
// the dimensions positive; invalid geometry is rejected here rather
// than clamped.
func NewGrid(target *ebiten.Image, width, height int, background, frameColor color.RGBA) (*Grid, error) {
	if target == nil {
		return nil, errors.New("canvas: target image must not be nil")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: dimensions must be positive, got %dx%d", width, height)
	}
	return &Grid{
		target:     target,
		width:      width,
		height:     height,
		cols:       width / CellSize,
		rows:       height / CellSize,
		background: background,
		frameColor: frameColor,
	}, nil
}

func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Fill paints the whole canvas with the background color.
func (g *Grid) Fill() {
	g.target.Fill(g.background)
}

func (g *Grid) DrawRectangle(x, y, w, h int, frame, spacing bool, c color.RGBA) {
	px, py, pw, ph, ok := g.clip(x, y, w, h)
	if !ok {
		return
	}

	if spacing {
		// Keep one background pixel on the left and bottom edges.
		px++
		pw--
		ph--
	}
	if pw <= 0 || ph <= 0 {
		return
	}

	if frame {
		vector.FillRect(g.target, float32(px), float32(py), float32(pw), float32(ph), g.frameColor, false)
		if pw > 2 && ph > 2 {
			vector.FillRect(g.target, float32(px+1), float32(py+1), float32(pw-2), float32(ph-2), c, false)
		}
		return
	}
	vector.FillRect(g.target, float32(px), float32(py), float32(pw), float32(ph), c, false)
}

func (g *Grid) ClearRectangle(x, y, w, h int) {
	px, py, pw, ph, ok := g.clip(x, y, w, h)
	if !ok {
		return
	}
	vector.FillRect(g.target, float32(px), float32(py), float32(pw), float32(ph), g.background, false)
}

func (g *Grid) DrawTriangleMarker(x, y int, c color.RGBA) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}

	centerX := x*CellSize + CellSize/2
	topY := y * CellSize

	// Pyramid of one pixel rows, widening downward.
	for row := 1; row < CellSize/2; row++ {
		vector.FillRect(g.target,
			float32(centerX-row), float32(topY+row),
			float32(2*row+1), 1, c, false)
	}
}

// clip converts a cell rectangle to clamped pixel coordinates.
func (g *Grid) clip(x, y, w, h int) (px, py, pw, ph int, ok bool) {
	x0 := max(0, x)
	y0 := max(0, y)
	x1 := min(g.cols, x+w)
	y1 := min(g.rows, y+h)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0 * CellSize, y0 * CellSize, (x1 - x0) * CellSize, (y1 - y0) * CellSize, true
}
