package ui

import "image"

const (
	labelX        = 10
	labelY        = 10
	labelSize     = 25
	glyphHeight   = 13
	outlineStroke = 1
)

// labelScale returns the factor that stretches the 7x13 bitmap font to a
// glyph height of size pixels.
func labelScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / glyphHeight
}

// cellRect returns the pixel rectangle covered by the cell at (x, y).
func cellRect(x, y, cellSize int) image.Rectangle {
	return image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
}
