package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/hashi-api/generator"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/infrastruture/pbsolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	engine := pbsolver.New()

	t.Run("forced layout", func(t *testing.T) {
		// Island degrees admit exactly one layout: a single up to (0, 3)
		// and a double across to (3, 0).
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 3},
				{X: 0, Y: 3, Degree: 1},
				{X: 3, Y: 0, Degree: 2},
			},
		}

		bridges, err := Solve(context.Background(), puzzle, engine)
		require.NoError(t, err)
		assert.ElementsMatch(t, []hashi.Bridge{
			{From: puzzle.Islands[0], To: puzzle.Islands[1], Single: true},
			{From: puzzle.Islands[0], To: puzzle.Islands[2], Single: false},
		}, bridges)

		assert.True(t, puzzle.WithSolution(bridges).Verify().OK)
	})

	t.Run("worked example", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 3},
				{X: 0, Y: 3, Degree: 2},
				{X: 3, Y: 0, Degree: 1},
			},
		}

		bridges, err := Solve(context.Background(), puzzle, engine)
		require.NoError(t, err)
		assert.ElementsMatch(t, []hashi.Bridge{
			{From: puzzle.Islands[0], To: puzzle.Islands[1], Single: false},
			{From: puzzle.Islands[0], To: puzzle.Islands[2], Single: true},
		}, bridges)
	})

	t.Run("connectivity rules out disjoint pairs", func(t *testing.T) {
		// Degrees alone could be met by two disjoint bridges; the flow
		// constraints must steer the solver to the connected chain.
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 2},
				{X: 0, Y: 3, Degree: 1},
				{X: 3, Y: 0, Degree: 2},
				{X: 3, Y: 3, Degree: 1},
			},
		}

		bridges, err := Solve(context.Background(), puzzle, engine)
		require.NoError(t, err)

		verdict := puzzle.WithSolution(bridges).Verify()
		assert.True(t, verdict.OK, verdict.String())
	})

	t.Run("unsolvable puzzle reports no solution", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 0, Y: 3, Degree: 2},
			},
		}

		_, err := Solve(context.Background(), puzzle, engine)
		assert.ErrorIs(t, err, ErrNoSolution)
	})

	t.Run("island unreachable by any candidate", func(t *testing.T) {
		// The third island shares no axis with the others, so its degree
		// demand can never be met.
		puzzle := hashi.Puzzle{
			Width:  5,
			Height: 5,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 0, Y: 3, Degree: 1},
				{X: 2, Y: 1, Degree: 1},
			},
		}

		_, err := Solve(context.Background(), puzzle, engine)
		assert.ErrorIs(t, err, ErrNoSolution)
	})
}

// TestSolveGenerated solves an independently generated puzzle from its
// question form and checks the structural invariants of the result.
func TestSolveGenerated(t *testing.T) {
	g := generator.New(&generator.Options{
		Rand:        rand.New(rand.NewSource(11)),
		MaxAttempts: 5000,
	})
	engine := pbsolver.New()

	generated, err := g.Generate(7, 7, generator.Easy)
	require.NoError(t, err)

	question := generated.WithoutSolution()
	bridges, err := Solve(context.Background(), question, engine)
	require.NoError(t, err)

	solved := question.WithSolution(bridges)
	verdict := solved.Verify()
	require.True(t, verdict.OK, verdict.String())

	// No two realized bridges may belong to a crossing pair.
	candidates := Candidates(question)
	index := make(map[Candidate]int, len(candidates))
	for k, c := range candidates {
		index[c] = k
	}
	position := make(map[[2]int]int, len(question.Islands))
	for i, island := range question.Islands {
		position[[2]int{island.X, island.Y}] = i
	}

	realized := make(map[int]bool, len(bridges))
	for _, bridge := range bridges {
		i := position[[2]int{bridge.From.X, bridge.From.Y}]
		j := position[[2]int{bridge.To.X, bridge.To.Y}]
		if j < i {
			i, j = j, i
		}
		k, ok := index[Candidate{I: i, J: j}]
		require.True(t, ok, "solved bridge is not a derived candidate")
		realized[k] = true
	}
	for _, pair := range Crossings(question, candidates) {
		assert.False(t, realized[pair.A] && realized[pair.B],
			"solution realizes a crossing pair")
	}
}
