// Package hashi holds the core domain of the bridge-connection puzzle:
// the board model, the immutable puzzle value and the solution verifier.
package hashi

import "fmt"

// Island is a numbered node on the board. Degree is the required total
// weight of bridges attached to it (a single bridge contributes 1, a double
// bridge 2). Identity is the position; no two islands share a position.
type Island struct {
	X      int `bson:"x" json:"x"`
	Y      int `bson:"y" json:"y"`
	Degree int `bson:"degree" json:"degree"`
}

// Bridge is a straight connector between two axis-aligned islands, occupying
// every cell strictly between its endpoints. Single bridges weigh 1 on each
// endpoint's degree, double bridges 2.
type Bridge struct {
	From   Island `bson:"from" json:"from"`
	To     Island `bson:"to" json:"to"`
	Single bool   `bson:"single" json:"single"`
}

// Aligned reports whether the bridge endpoints share exactly one axis.
func (b Bridge) Aligned() bool {
	return (b.From.X == b.To.X) != (b.From.Y == b.To.Y)
}

// weight is the degree contribution of the bridge on each endpoint.
func (b Bridge) weight() int {
	if b.Single {
		return 1
	}
	return 2
}

// Puzzle is an immutable puzzle instance. A nil Solution is the "question"
// form; a non-nil Solution the "answer" form. Puzzles are never mutated,
// only copied with or without a solution attached.
type Puzzle struct {
	Width    int      `bson:"width" json:"width"`
	Height   int      `bson:"height" json:"height"`
	Islands  []Island `bson:"islands" json:"islands"`
	Solution []Bridge `bson:"solution,omitempty" json:"solution,omitempty"`
}

// HasSolution reports whether the puzzle carries a solution.
func (p Puzzle) HasSolution() bool {
	return p.Solution != nil
}

// WithSolution returns a copy of the puzzle with the given solution attached.
func (p Puzzle) WithSolution(solution []Bridge) Puzzle {
	return Puzzle{Width: p.Width, Height: p.Height, Islands: p.Islands, Solution: solution}
}

// WithoutSolution returns the question form of the puzzle.
func (p Puzzle) WithoutSolution() Puzzle {
	return Puzzle{Width: p.Width, Height: p.Height, Islands: p.Islands}
}

// ToBoard reconstructs a board holding the puzzle's islands. Bridge cells
// are not replayed; candidate derivation only needs island occupancy.
func (p Puzzle) ToBoard() *Board {
	board := NewBoard(p.Width, p.Height)
	for _, island := range p.Islands {
		board.SetIsland(island.X, island.Y, island.Degree)
	}
	return board
}

// Verification failure reasons.
const (
	ReasonDegreeMismatch = "Islands do not match bridges"
	ReasonDisconnected   = "Islands are not fully connected"
	ReasonNotAligned     = "Bridge endpoints are not axis-aligned"
	ReasonNoSolution     = "Puzzle has no solution attached"
)

// Verdict is the structured outcome of verifying a solution. Verification of
// an externally supplied solution is an expected operation, so failures are
// reported here rather than as errors.
type Verdict struct {
	OK     bool
	Reason string
	// Unreached names the islands the connectivity walk could not reach.
	// Only set when Reason is ReasonDisconnected.
	Unreached []Island
}

// Verify checks the attached solution against the two structural invariants:
// every island's incident bridge weight sums to its degree, and the bridge
// graph connects all islands. Bridges are also defensively checked for
// axis-alignment, since a skewed bridge is a data-integrity error.
func (p Puzzle) Verify() Verdict {
	if !p.HasSolution() {
		return Verdict{Reason: ReasonNoSolution}
	}
	if len(p.Islands) == 0 {
		return Verdict{OK: true}
	}

	for _, bridge := range p.Solution {
		if !bridge.Aligned() {
			return Verdict{Reason: ReasonNotAligned}
		}
	}

	// Degree check: subtract each bridge's weight from its endpoints.
	type position struct{ x, y int }
	residual := make(map[position]int, len(p.Islands))
	for _, island := range p.Islands {
		residual[position{island.X, island.Y}] = island.Degree
	}
	for _, bridge := range p.Solution {
		residual[position{bridge.From.X, bridge.From.Y}] -= bridge.weight()
		residual[position{bridge.To.X, bridge.To.Y}] -= bridge.weight()
	}
	for _, remaining := range residual {
		if remaining != 0 {
			return Verdict{Reason: ReasonDegreeMismatch}
		}
	}

	// Connectivity check: BFS over the bridge graph from the first island.
	neighbours := make(map[position][]position, len(p.Islands))
	for _, bridge := range p.Solution {
		from := position{bridge.From.X, bridge.From.Y}
		to := position{bridge.To.X, bridge.To.Y}
		neighbours[from] = append(neighbours[from], to)
		neighbours[to] = append(neighbours[to], from)
	}
	visited := make(map[position]bool, len(p.Islands))
	queue := []position{{p.Islands[0].X, p.Islands[0].Y}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		queue = append(queue, neighbours[current]...)
	}

	var unreached []Island
	for _, island := range p.Islands {
		if !visited[position{island.X, island.Y}] {
			unreached = append(unreached, island)
		}
	}
	if len(unreached) > 0 {
		return Verdict{Reason: ReasonDisconnected, Unreached: unreached}
	}

	return Verdict{OK: true}
}

func (v Verdict) String() string {
	if v.OK {
		return "Success"
	}
	if len(v.Unreached) == 0 {
		return v.Reason
	}
	out := v.Reason
	for _, island := range v.Unreached {
		out += fmt.Sprintf("; unable to reach (%d, %d)", island.X, island.Y)
	}
	return out
}
