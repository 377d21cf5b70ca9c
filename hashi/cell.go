package hashi

// CellKind tags the state of a single board cell.
type CellKind uint8

const (
	// CellEmpty marks a cell that holds neither an island nor a bridge.
	CellEmpty CellKind = iota
	// CellIsland marks a cell occupied by an island.
	CellIsland
	// CellBridge marks a cell crossed by a bridge segment.
	CellBridge
)

// Cell is a single position on a Board. The degree is only stored for island
// cells; the accessor makes a degree on a non-island cell unrepresentable.
// Cells are owned by the Board and mutated only through Board operations.
type Cell struct {
	kind   CellKind
	degree int
}

// Kind returns the cell's tag.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell holds neither an island nor a bridge.
func (c Cell) IsEmpty() bool {
	return c.kind == CellEmpty
}

// Degree returns the island degree. ok is false for non-island cells.
func (c Cell) Degree() (degree int, ok bool) {
	if c.kind != CellIsland {
		return 0, false
	}
	return c.degree, true
}
