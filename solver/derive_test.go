package solver

import (
	"testing"

	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	t.Run("axis-aligned pairs", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 3},
				{X: 0, Y: 3, Degree: 2},
				{X: 3, Y: 0, Degree: 1},
			},
		}

		assert.Equal(t, []Candidate{{I: 0, J: 1}, {I: 0, J: 2}}, Candidates(puzzle))
	})

	t.Run("an island strictly between blocks the pair", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  5,
			Height: 5,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 2, Y: 0, Degree: 2},
				{X: 4, Y: 0, Degree: 1},
			},
		}

		assert.Equal(t, []Candidate{{I: 0, J: 1}, {I: 1, J: 2}}, Candidates(puzzle))
	})

	t.Run("degrees are ignored", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 0},
				{X: 0, Y: 3, Degree: 0},
			},
		}

		assert.Equal(t, []Candidate{{I: 0, J: 1}}, Candidates(puzzle))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  5,
			Height: 5,
			Islands: []hashi.Island{
				{X: 0, Y: 1, Degree: 1},
				{X: 4, Y: 1, Degree: 1},
				{X: 2, Y: 0, Degree: 1},
				{X: 2, Y: 3, Degree: 1},
			},
		}

		first := Candidates(puzzle)
		second := Candidates(puzzle)
		assert.Equal(t, first, second)
		assert.Equal(t, Crossings(puzzle, first), Crossings(puzzle, second))
	})
}

func TestCrossings(t *testing.T) {
	t.Run("proper crossing is detected", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  5,
			Height: 5,
			Islands: []hashi.Island{
				{X: 0, Y: 1, Degree: 1},
				{X: 4, Y: 1, Degree: 1},
				{X: 2, Y: 0, Degree: 1},
				{X: 2, Y: 3, Degree: 1},
			},
		}

		candidates := Candidates(puzzle)
		assert.Equal(t, []Candidate{{I: 0, J: 1}, {I: 2, J: 3}}, candidates)
		assert.Equal(t, []CrossingPair{{A: 0, B: 1}}, Crossings(puzzle, candidates))
	})

	t.Run("sharing an endpoint does not cross", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 3, Y: 0, Degree: 2},
				{X: 3, Y: 3, Degree: 1},
			},
		}

		candidates := Candidates(puzzle)
		assert.Equal(t, []Candidate{{I: 0, J: 1}, {I: 1, J: 2}}, candidates)
		assert.Empty(t, Crossings(puzzle, candidates))
	})

	t.Run("parallel candidates never cross", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  5,
			Height: 5,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 3, Y: 0, Degree: 1},
				{X: 1, Y: 2, Degree: 1},
				{X: 4, Y: 2, Degree: 1},
			},
		}

		candidates := Candidates(puzzle)
		assert.Equal(t, []Candidate{{I: 0, J: 1}, {I: 2, J: 3}}, candidates)
		assert.Empty(t, Crossings(puzzle, candidates))
	})
}
