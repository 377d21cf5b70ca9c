// Package generator grows random hashi puzzle instances together with a
// planted solution, parameterized by a difficulty tier.
package generator

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/beka-birhanu/hashi-api/hashi"
)

const (
	defaultMaxAttempts = 500

	// densityDecay loosens the island density target after an attempt that
	// fell short of the island count, so the search always converges.
	densityDecay = 0.01

	// minBoardSide is the smallest board on which the growth procedure can
	// place a bridge in every direction.
	minBoardSide = 4
)

var (
	// ErrBoardTooSmall is returned for boards under 4x4.
	ErrBoardTooSmall = errors.New("board must be at least 4x4")
	// ErrUnknownDifficulty is returned for an unrecognized difficulty tier.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrExhausted is returned when no attempt produced an acceptable puzzle
	// within the attempt budget.
	ErrExhausted = errors.New("could not generate a puzzle within the attempt budget")
)

// Options configures a Generator.
type Options struct {
	// Rand is the randomness source. Defaults to a time-seeded source.
	Rand *rand.Rand

	// MaxAttempts caps from-scratch generation attempts before giving up.
	MaxAttempts int
}

// Generator produces puzzles. A Generator is not safe for concurrent use;
// create one per goroutine.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
}

// New creates a Generator with the provided options.
func New(opts *Options) *Generator {
	if opts == nil {
		opts = &Options{}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Generator{
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Generate produces a puzzle whose islands are covered by a connected bridge
// layout, with the planted solution attached. A candidate is accepted only
// when it reaches the tier's island count target and leaves no outer row or
// column of the board completely empty; each rejected candidate is discarded
// and generation restarts from a fresh board.
func (g *Generator) Generate(width, height int, difficulty Difficulty) (hashi.Puzzle, error) {
	tier, ok := tiers[difficulty]
	if !ok {
		return hashi.Puzzle{}, ErrUnknownDifficulty
	}
	if width < minBoardSide || height < minBoardSide {
		return hashi.Puzzle{}, ErrBoardTooSmall
	}

	density := tier.maxIslandDensity
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		minIslands := int(math.Floor(float64(width*height) / density))
		if minIslands < 4 {
			minIslands = 4
		}

		board, islandCount, solution := g.grow(width, height, tier, minIslands, minIslands*10)
		if islandCount < minIslands {
			density += densityDecay
			continue
		}
		if !isFull(board) {
			continue
		}
		return board.ToPuzzle().WithSolution(solution), nil
	}
	return hashi.Puzzle{}, ErrExhausted
}

type position struct{ x, y int }

// grow runs one randomized growth attempt: seed an island at a random
// position, then repeatedly pick a random frontier island and run a bridge
// of random thickness and length off it, creating a new island at the far
// end. Islands that can no longer expand are pruned from the frontier.
// The returned island count excludes the seed.
func (g *Generator) grow(width, height int, tier tier, minIslands, maxCycles int) (*hashi.Board, int, []hashi.Bridge) {
	board := hashi.NewBoard(width, height)

	seed := position{g.rng.Intn(width), g.rng.Intn(height)}
	board.SetIsland(seed.x, seed.y, 0)
	frontier := []position{seed}

	islandCount := 0
	var solution []hashi.Bridge

	for cycle := 0; cycle < maxCycles; cycle++ {
		if len(frontier) == 0 || islandCount >= minIslands {
			break
		}

		idx := g.rng.Intn(len(frontier))
		start := frontier[idx]

		direction, ok := g.randomDirection(board, start)
		if !ok {
			frontier = swapRemove(frontier, idx)
			continue
		}

		degree, _ := board.At(start.x, start.y).Degree()
		if degree >= tier.maxDegree {
			frontier = swapRemove(frontier, idx)
			continue
		}

		thickness := g.randomThickness(degree, tier)
		length := g.randomLength(board, start, direction, tier.shorterBridges)

		dx, dy := direction.Vector()
		end := position{start.x + dx*(length+1), start.y + dy*(length+1)}

		// Bridges must not create orthogonally adjacent islands.
		if g.hasAdjacentIsland(board, end) {
			continue
		}

		board.AddIslandDegree(start.x, start.y, thickness)
		board.SetIsland(end.x, end.y, thickness)
		for i := 1; i <= length; i++ {
			board.SetBridge(start.x+dx*i, start.y+dy*i)
		}

		frontier = append(frontier, end)
		islandCount++
		solution = append(solution, hashi.Bridge{
			From:   hashi.Island{X: start.x, Y: start.y},
			To:     hashi.Island{X: end.x, Y: end.y},
			Single: thickness == 1,
		})
	}

	return board, islandCount, solution
}

// randomDirection picks uniformly among the directions whose next two cells
// are both empty, leaving room for a length-1 bridge plus separation.
func (g *Generator) randomDirection(board *hashi.Board, from position) (hashi.Direction, bool) {
	var available []hashi.Direction
	for _, direction := range hashi.Directions {
		dx, dy := direction.Vector()
		if !board.WithinBounds(from.x+2*dx, from.y+2*dy) {
			continue
		}
		if board.At(from.x+dx, from.y+dy).IsEmpty() && board.At(from.x+2*dx, from.y+2*dy).IsEmpty() {
			available = append(available, direction)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[g.rng.Intn(len(available))], true
}

// randomThickness draws the bridge weight. A double bridge is only possible
// while the island has room for two more degree units.
func (g *Generator) randomThickness(degree int, tier tier) int {
	if tier.maxDegree-degree < 2 {
		return 1
	}
	if g.rng.Float64() < tier.singleBridgeOdds {
		return 1
	}
	return 2
}

// randomLength draws a bridge length in [1, maxLength], where maxLength is
// bounded by the empty run in the chosen direction. The walk starts three
// cells out so the new island keeps a one-cell gap from the path already
// guaranteed by randomDirection.
func (g *Generator) randomLength(board *hashi.Board, from position, direction hashi.Direction, shorterBridges bool) int {
	dx, dy := direction.Vector()
	maxLength := 1
	x, y := from.x+3*dx, from.y+3*dy
	for board.WithinBounds(x, y) && board.At(x, y).IsEmpty() {
		maxLength++
		x += dx
		y += dy
	}

	if shorterBridges {
		return min(1+g.rng.Intn(maxLength), 1+g.rng.Intn(maxLength))
	}
	return 1 + g.rng.Intn(maxLength)
}

func (g *Generator) hasAdjacentIsland(board *hashi.Board, at position) bool {
	for _, direction := range hashi.Directions {
		dx, dy := direction.Vector()
		x, y := at.x+dx, at.y+dy
		if board.WithinBounds(x, y) && board.At(x, y).Kind() == hashi.CellIsland {
			return true
		}
	}
	return false
}

// isFull reports whether every outer row and column of the board holds at
// least one non-empty cell, so the puzzle uses the whole board.
func isFull(board *hashi.Board) bool {
	topEmpty, bottomEmpty := true, true
	for x := 0; x < board.Width; x++ {
		if !board.At(x, 0).IsEmpty() {
			topEmpty = false
		}
		if !board.At(x, board.Height-1).IsEmpty() {
			bottomEmpty = false
		}
	}

	leftEmpty, rightEmpty := true, true
	for y := 0; y < board.Height; y++ {
		if !board.At(0, y).IsEmpty() {
			leftEmpty = false
		}
		if !board.At(board.Width-1, y).IsEmpty() {
			rightEmpty = false
		}
	}

	return !topEmpty && !bottomEmpty && !leftEmpty && !rightEmpty
}

func swapRemove(frontier []position, idx int) []position {
	frontier[idx] = frontier[len(frontier)-1]
	return frontier[:len(frontier)-1]
}
