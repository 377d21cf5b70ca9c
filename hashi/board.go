package hashi

import "fmt"

// Board is a mutable grid of cells used while growing a puzzle and while
// deriving bridge candidates. Cells are stored column-major: cells[x][y].
// Boards are created fresh per use and never persisted.
type Board struct {
	Width  int
	Height int

	cells [][]Cell
}

// NewBoard creates an all-empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, height)
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// WithinBounds reports whether (x, y) is a valid cell position.
func (b *Board) WithinBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x, y). Out-of-bounds access is a caller contract
// violation and panics.
func (b *Board) At(x, y int) Cell {
	b.mustBeWithinBounds(x, y)
	return b.cells[x][y]
}

// SetIsland places an island with the given degree at (x, y), overwriting
// whatever the cell held.
func (b *Board) SetIsland(x, y, degree int) {
	b.mustBeWithinBounds(x, y)
	b.cells[x][y] = Cell{kind: CellIsland, degree: degree}
}

// SetBridge marks (x, y) as crossed by a bridge segment.
func (b *Board) SetBridge(x, y int) {
	b.mustBeWithinBounds(x, y)
	b.cells[x][y] = Cell{kind: CellBridge}
}

// SetEmpty clears the cell at (x, y).
func (b *Board) SetEmpty(x, y int) {
	b.mustBeWithinBounds(x, y)
	b.cells[x][y] = Cell{}
}

// AddIslandDegree bumps the degree of the island at (x, y). Panics if the
// cell does not hold an island.
func (b *Board) AddIslandDegree(x, y, delta int) {
	b.mustBeWithinBounds(x, y)
	cell := &b.cells[x][y]
	if cell.kind != CellIsland {
		panic(fmt.Sprintf("hashi: cell (%d, %d) is not an island", x, y))
	}
	cell.degree += delta
}

// ToPuzzle scans the board and collects its islands into a Puzzle with no
// solution. The scan is column-major (x outer, y inner) so the island order
// is deterministic; downstream solving indexes islands by this order.
func (b *Board) ToPuzzle() Puzzle {
	var islands []Island
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			if degree, ok := b.cells[x][y].Degree(); ok {
				islands = append(islands, Island{X: x, Y: y, Degree: degree})
			}
		}
	}
	return Puzzle{Width: b.Width, Height: b.Height, Islands: islands}
}

func (b *Board) mustBeWithinBounds(x, y int) {
	if !b.WithinBounds(x, y) {
		panic(fmt.Sprintf("hashi: cell (%d, %d) out of %dx%d board", x, y, b.Width, b.Height))
	}
}
