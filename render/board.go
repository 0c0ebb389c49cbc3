// Package render draws the board for terminals and logs.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/snekwrap/game"
)

// Cell kinds, in drawing priority.
const (
	cellEmpty = iota
	cellBody
	cellFood
	cellFoodUnderBody
	cellHead
)

var glyphs = [...]string{
	cellEmpty:         ".",
	cellBody:          "o",
	cellFood:          "F",
	cellFoodUnderBody: "*",
	cellHead:          "H",
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

func grid(state *game.State) [][]int {
	cells := make([][]int, state.Grid.Height)
	for y := range cells {
		cells[y] = make([]int, state.Grid.Width)
	}

	for i, p := range state.Snake.Body {
		if !state.Grid.Contains(p) {
			continue
		}
		if i == 0 {
			cells[p.Y][p.X] = cellHead
		} else if cells[p.Y][p.X] != cellHead {
			cells[p.Y][p.X] = cellBody
		}
	}

	if f := state.Food.Pos; state.Grid.Contains(f) {
		switch cells[f.Y][f.X] {
		case cellEmpty:
			cells[f.Y][f.X] = cellFood
		case cellBody:
			cells[f.Y][f.X] = cellFoodUnderBody
		}
	}
	return cells
}

// Board renders the state as plain ASCII, row 0 first, one space between cells.
func Board(state *game.State) string {
	var sb strings.Builder
	for _, row := range grid(state) {
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyphs[c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Styled renders the board with colours and a frame for the TUI.
// A dead snake is drawn in red.
func Styled(state *game.State, alive bool) string {
	var sb strings.Builder
	rows := grid(state)
	for y, row := range rows {
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(styleFor(c, alive).Render(glyphs[c]))
		}
		if y < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	return frameStyle.Render(sb.String())
}

func styleFor(cell int, alive bool) lipgloss.Style {
	switch cell {
	case cellHead, cellBody:
		if !alive {
			return deadStyle
		}
		if cell == cellHead {
			return headStyle
		}
		return bodyStyle
	case cellFood, cellFoodUnderBody:
		return foodStyle
	default:
		return emptyStyle
	}
}
