package hashi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("question form", func(t *testing.T) {
		out, err := testPuzzle().Render()
		require.NoError(t, err)

		expected := "┌────────────┐\n" +
			"│ 3        1 │\n" +
			"│            │\n" +
			"│            │\n" +
			"│            │\n" +
			"│            │\n" +
			"│            │\n" +
			"│ 2          │\n" +
			"└────────────┘"
		assert.Equal(t, expected, out)
	})

	t.Run("answer form draws single and double connectors", func(t *testing.T) {
		puzzle := testPuzzle().WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 0, Y: 3}, Single: false},
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 0}, Single: true},
		})
		out, err := puzzle.Render()
		require.NoError(t, err)

		expected := "┌────────────┐\n" +
			"│ 3 ────── 1 │\n" +
			"│            │\n" +
			"│ ║          │\n" +
			"│ ║          │\n" +
			"│ ║          │\n" +
			"│            │\n" +
			"│ 2          │\n" +
			"└────────────┘"
		assert.Equal(t, expected, out)
	})

	t.Run("skewed bridge fails fast", func(t *testing.T) {
		puzzle := testPuzzle().WithSolution([]Bridge{
			{From: Island{X: 0, Y: 0}, To: Island{X: 3, Y: 3}, Single: true},
		})
		_, err := puzzle.Render()
		assert.ErrorIs(t, err, ErrNotAligned)
	})
}
