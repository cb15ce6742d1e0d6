package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellDead cellKind = iota
	cellAlive
	cellHover
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellDead:  lipgloss.NewStyle(),
	cellAlive: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	cellHover: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var cellRunes = map[cellKind]rune{
	cellDead:  ' ',
	cellAlive: '█',
	cellHover: '▒',
}

var (
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// cursor marks the cell drawn as the edit cursor, if any.
type cursor struct {
	x, y int
	ok   bool
}

// RenderGrid converts row-major cells into styled text, cellW columns per
// cell. Adjacent cells of the same kind share one styled run.
func RenderGrid(cells []bool, w, h, cellW int, cur cursor) string {
	if cellW <= 0 {
		cellW = 1
	}
	var sb strings.Builder
	sb.Grow(w*h*cellW*2 + h)

	kindAt := func(x, y int) cellKind {
		if cur.ok && cur.x == x && cur.y == y && !cells[y*w+x] {
			return cellHover
		}
		if cells[y*w+x] {
			return cellAlive
		}
		return cellDead
	}

	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < w {
			start := kindAt(x, y)
			var run strings.Builder
			for x < w && kindAt(x, y) == start {
				for i := 0; i < cellW; i++ {
					run.WriteRune(cellRunes[start])
				}
				x++
			}
			sb.WriteString(cellStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
