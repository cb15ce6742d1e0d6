//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the mode label and the edit cursor over the grid.
type HUD struct {
	cellSize int

	labelColor   color.Color
	outlineColor color.Color
}

// NewHUD constructs a HUD for cells of the given pixel size.
func NewHUD(cellSize int) *HUD {
	return &HUD{
		cellSize:     cellSize,
		labelColor:   color.White,
		outlineColor: color.RGBA{R: 120, G: 120, B: 130, A: 255},
	}
}

// Draw paints the "Paused" label and, when hover is set, outlines the cell
// under the pointer. Nothing is drawn while running.
func (h *HUD) Draw(screen *ebiten.Image, paused bool, hoverX, hoverY int, hover bool) {
	if h == nil || !paused {
		return
	}
	if hover {
		r := cellRect(hoverX, hoverY, h.cellSize)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), outlineStroke, h.outlineColor, false)
	}

	scale := labelScale(labelSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	// DrawWithOptions places the baseline at the origin.
	op.GeoM.Translate(labelX, labelY+glyphHeight*scale)
	op.ColorScale.ScaleWithColor(h.labelColor)
	text.DrawWithOptions(screen, "Paused", basicfont.Face7x13, op)
}
