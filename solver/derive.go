// Package solver derives the legal bridge candidates of a puzzle, formulates
// them as an integer program and reads the solved assignment back into a
// bridge layout.
package solver

import "github.com/beka-birhanu/hashi-api/hashi"

// Candidate is a geometrically legal potential bridge between two islands,
// identified by their indexes in the puzzle's island list, with I < J.
type Candidate struct {
	I int
	J int
}

// CrossingPair indexes two candidates (into the slice returned by
// Candidates) whose segments would intersect if both were realized.
type CrossingPair struct {
	A int
	B int
}

// Candidates returns every pair of islands that share an axis with no other
// island strictly between them. Island degrees and any existing bridge
// layout are ignored; occupancy is checked against island positions only.
// The result is deterministic for fixed island positions.
func Candidates(p hashi.Puzzle) []Candidate {
	board := p.ToBoard()

	var candidates []Candidate
	for i := 0; i < len(p.Islands); i++ {
		for j := i + 1; j < len(p.Islands); j++ {
			a, b := p.Islands[i], p.Islands[j]

			switch {
			case a.X == b.X: // vertical
				if clearVertical(board, a.X, a.Y, b.Y) {
					candidates = append(candidates, Candidate{I: i, J: j})
				}
			case a.Y == b.Y: // horizontal
				if clearHorizontal(board, a.Y, a.X, b.X) {
					candidates = append(candidates, Candidate{I: i, J: j})
				}
			}
		}
	}
	return candidates
}

// Crossings returns every pair of candidates, one horizontal and one
// vertical, whose segments properly cross: the horizontal segment's y lies
// strictly between the vertical segment's endpoints and the vertical
// segment's x strictly between the horizontal segment's endpoints. Parallel
// candidates never cross.
func Crossings(p hashi.Puzzle, candidates []Candidate) []CrossingPair {
	var crossings []CrossingPair
	for a := 0; a < len(candidates); a++ {
		for b := a + 1; b < len(candidates); b++ {
			first := segment(p, candidates[a])
			second := segment(p, candidates[b])

			if first.horizontal == second.horizontal {
				continue
			}

			horizontal, vertical := first, second
			if second.horizontal {
				horizontal, vertical = second, first
			}

			if vertical.lo < horizontal.fixed && horizontal.fixed < vertical.hi &&
				horizontal.lo < vertical.fixed && vertical.fixed < horizontal.hi {
				crossings = append(crossings, CrossingPair{A: a, B: b})
			}
		}
	}
	return crossings
}

// span is a candidate segment reduced to its fixed coordinate and the
// ordered range of its varying coordinate.
type span struct {
	horizontal bool
	fixed      int
	lo, hi     int
}

func segment(p hashi.Puzzle, c Candidate) span {
	a, b := p.Islands[c.I], p.Islands[c.J]
	if a.Y == b.Y {
		return span{horizontal: true, fixed: a.Y, lo: min(a.X, b.X), hi: max(a.X, b.X)}
	}
	return span{horizontal: false, fixed: a.X, lo: min(a.Y, b.Y), hi: max(a.Y, b.Y)}
}

func clearVertical(board *hashi.Board, x, y1, y2 int) bool {
	for y := min(y1, y2) + 1; y < max(y1, y2); y++ {
		if board.At(x, y).Kind() == hashi.CellIsland {
			return false
		}
	}
	return true
}

func clearHorizontal(board *hashi.Board, y, x1, x2 int) bool {
	for x := min(x1, x2) + 1; x < max(x1, x2); x++ {
		if board.At(x, y).Kind() == hashi.CellIsland {
			return false
		}
	}
	return true
}
