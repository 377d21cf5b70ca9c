package hashi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPuzzle() Puzzle {
	return Puzzle{
		Width:  4,
		Height: 4,
		Islands: []Island{
			{X: 0, Y: 0, Degree: 3},
			{X: 0, Y: 3, Degree: 2},
			{X: 3, Y: 0, Degree: 1},
		},
	}
}

func TestVerify(t *testing.T) {
	t.Run("valid solution passes", func(t *testing.T) {
		puzzle := testPuzzle().WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 0, Y: 3}, Single: false},
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 0}, Single: true},
		})

		verdict := puzzle.Verify()
		assert.True(t, verdict.OK)
		assert.Empty(t, verdict.Reason)
		assert.Empty(t, verdict.Unreached)
	})

	t.Run("degree mismatch fails", func(t *testing.T) {
		// Island (3, 0) expects 1 but the double bridge supplies 2.
		puzzle := testPuzzle().WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 0, Y: 3}, Single: false},
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 0}, Single: false},
		})

		verdict := puzzle.Verify()
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonDegreeMismatch, verdict.Reason)
	})

	t.Run("disconnected solution names unreached islands", func(t *testing.T) {
		puzzle := Puzzle{
			Width:  4,
			Height: 4,
			Islands: []Island{
				{X: 0, Y: 0, Degree: 2},
				{X: 0, Y: 3, Degree: 1},
				{X: 3, Y: 0, Degree: 2},
				{X: 3, Y: 3, Degree: 1},
			},
		}.WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 0}, Single: false},
			{From: Island{X: 0, Y: 3}, To: Island{X: 3, Y: 3}, Single: true},
		})

		verdict := puzzle.Verify()
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonDisconnected, verdict.Reason)
		assert.ElementsMatch(t, []Island{
			{X: 0, Y: 3, Degree: 1},
			{X: 3, Y: 3, Degree: 1},
		}, verdict.Unreached)
	})

	t.Run("skewed bridge is a data integrity failure", func(t *testing.T) {
		puzzle := testPuzzle().WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 3}, Single: true},
		})

		verdict := puzzle.Verify()
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonNotAligned, verdict.Reason)
	})

	t.Run("missing solution fails", func(t *testing.T) {
		verdict := testPuzzle().Verify()
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonNoSolution, verdict.Reason)
	})
}

func TestSolutionTransforms(t *testing.T) {
	solution := []Bridge{
		{From: Island{X: 0, Y: 0}, To: Island{X: 0, Y: 3}, Single: false},
		{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 0}, Single: true},
	}
	answer := testPuzzle().WithSolution(solution)

	t.Run("without solution strips only the solution", func(t *testing.T) {
		question := answer.WithoutSolution()
		assert.False(t, question.HasSolution())
		assert.Equal(t, answer.Islands, question.Islands)
		assert.Equal(t, answer.Width, question.Width)
		assert.Equal(t, answer.Height, question.Height)
	})

	t.Run("reattaching the same solution restores the puzzle", func(t *testing.T) {
		assert.Equal(t, answer, answer.WithoutSolution().WithSolution(solution))
	})
}
