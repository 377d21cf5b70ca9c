package hashi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAligned is returned when a solution bridge's endpoints share no axis.
// Rendering fails fast rather than silently drawing a skewed bridge.
var ErrNotAligned = errors.New("hashi: bridge endpoints are not axis-aligned")

const (
	cellBlank          = "   "
	cellVertical       = " │ "
	cellVerticalBold   = " ║ "
	cellHorizontal     = "───"
	cellHorizontalBold = "═══"
)

// Render draws the puzzle as a fixed-width text board using box-drawing
// characters. Each cell is three characters wide; islands show their degree,
// and solution bridges (when attached) fill every intermediate cell with a
// thin (single) or thick (double) connector. Spacer rows between puzzle rows
// continue a vertical connector only when the same connector appears in both
// the row above and the row below.
func (p Puzzle) Render() (string, error) {
	symbols := make(map[[2]int]string, len(p.Islands))
	for _, island := range p.Islands {
		symbols[[2]int{island.X, island.Y}] = fmt.Sprintf(" %d ", island.Degree)
	}

	for _, bridge := range p.Solution {
		switch {
		case bridge.From.X == bridge.To.X && bridge.From.Y != bridge.To.Y:
			start := min(bridge.From.Y, bridge.To.Y) + 1
			stop := max(bridge.From.Y, bridge.To.Y)
			for y := start; y < stop; y++ {
				if bridge.Single {
					symbols[[2]int{bridge.From.X, y}] = cellVertical
				} else {
					symbols[[2]int{bridge.From.X, y}] = cellVerticalBold
				}
			}
		case bridge.From.Y == bridge.To.Y && bridge.From.X != bridge.To.X:
			start := min(bridge.From.X, bridge.To.X) + 1
			stop := max(bridge.From.X, bridge.To.X)
			for x := start; x < stop; x++ {
				if bridge.Single {
					symbols[[2]int{x, bridge.From.Y}] = cellHorizontal
				} else {
					symbols[[2]int{x, bridge.From.Y}] = cellHorizontalBold
				}
			}
		default:
			return "", ErrNotAligned
		}
	}

	at := func(x, y int) string {
		if s, ok := symbols[[2]int{x, y}]; ok {
			return s
		}
		return cellBlank
	}

	var out strings.Builder
	out.WriteString("┌" + strings.Repeat("─", p.Width*3) + "┐\n")
	for y := 0; y < p.Height; y++ {
		out.WriteString("│")
		for x := 0; x < p.Width; x++ {
			out.WriteString(at(x, y))
		}
		out.WriteString("│\n")

		if y == p.Height-1 {
			continue
		}
		// Spacer row: carry vertical connectors through the gap.
		out.WriteString("│")
		for x := 0; x < p.Width; x++ {
			symbol := at(x, y)
			if symbol == at(x, y+1) && (symbol == cellVertical || symbol == cellVerticalBold) {
				out.WriteString(symbol)
			} else {
				out.WriteString(cellBlank)
			}
		}
		out.WriteString("│\n")
	}
	out.WriteString("└" + strings.Repeat("─", p.Width*3) + "┘")
	return out.String(), nil
}
