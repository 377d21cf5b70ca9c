package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/generator"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/infrastruture/pbsolver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPuzzleRepo is an in-memory PuzzleRepo for tests.
type memPuzzleRepo struct {
	records map[uuid.UUID]dmn.PuzzleRecord
}

func newMemPuzzleRepo() *memPuzzleRepo {
	return &memPuzzleRepo{records: make(map[uuid.UUID]dmn.PuzzleRecord)}
}

func (m *memPuzzleRepo) Save(record *dmn.PuzzleRecord) error {
	m.records[record.ID] = *record
	return nil
}

func (m *memPuzzleRepo) ByID(id uuid.UUID) (*dmn.PuzzleRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, errors.New("puzzle not found")
	}
	return &record, nil
}

func (m *memPuzzleRepo) ByDay(day string) (*dmn.PuzzleRecord, error) {
	for _, record := range m.records {
		if record.Day != "" && record.Day == day {
			found := record
			return &found, nil
		}
	}
	return nil, errors.New("puzzle not found")
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newPuzzleService(t *testing.T, repo *memPuzzleRepo) *Puzzle {
	t.Helper()
	svc, err := NewPuzzleService(PuzzleConfig{
		Generator:  generator.New(&generator.Options{Rand: rand.New(rand.NewSource(3)), MaxAttempts: 5000}),
		Engine:     pbsolver.New(),
		PuzzleRepo: repo,
		Logger:     nopLogger{},
	})
	require.NoError(t, err)
	return svc
}

func TestPuzzleGenerate(t *testing.T) {
	repo := newMemPuzzleRepo()
	svc := newPuzzleService(t, repo)

	t.Run("persists the generated puzzle with its solution", func(t *testing.T) {
		record, err := svc.Generate(context.Background(), 7, 7, "easy")
		require.NoError(t, err)

		stored, err := svc.PuzzleByID(record.ID)
		require.NoError(t, err)
		assert.Equal(t, "easy", stored.Difficulty)
		assert.True(t, stored.Puzzle.HasSolution())
		assert.True(t, stored.Puzzle.Verify().OK)
		assert.False(t, stored.Question().HasSolution())
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), 7, 7, "impossible")
		assert.ErrorIs(t, err, generator.ErrUnknownDifficulty)
	})

	t.Run("rejects oversized boards", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), 51, 7, "easy")
		assert.ErrorIs(t, err, ErrInvalidPuzzle)
	})
}

func TestPuzzleSolve(t *testing.T) {
	svc := newPuzzleService(t, newMemPuzzleRepo())

	t.Run("solves a question and the result verifies", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 3},
				{X: 0, Y: 3, Degree: 2},
				{X: 3, Y: 0, Degree: 1},
			},
		}

		bridges, err := svc.Solve(context.Background(), puzzle)
		require.NoError(t, err)
		assert.True(t, puzzle.WithSolution(bridges).Verify().OK)
	})

	t.Run("rejects duplicate islands", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 0, Y: 0, Degree: 1},
			},
		}

		_, err := svc.Solve(context.Background(), puzzle)
		assert.ErrorIs(t, err, ErrInvalidPuzzle)
	})

	t.Run("rejects islands outside the board", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 9, Y: 0, Degree: 1},
			},
		}

		_, err := svc.Solve(context.Background(), puzzle)
		assert.ErrorIs(t, err, ErrInvalidPuzzle)
	})

	t.Run("reports unsolvable puzzles", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:  4,
			Height: 4,
			Islands: []hashi.Island{
				{X: 0, Y: 0, Degree: 1},
				{X: 0, Y: 3, Degree: 2},
			},
		}

		_, err := svc.Solve(context.Background(), puzzle)
		assert.ErrorIs(t, err, ErrNoSolution)
	})
}

func TestPuzzleVerify(t *testing.T) {
	svc := newPuzzleService(t, newMemPuzzleRepo())

	t.Run("accepts a correct solution", func(t *testing.T) {
		islands := []hashi.Island{
			{X: 0, Y: 0, Degree: 3},
			{X: 0, Y: 3, Degree: 2},
			{X: 3, Y: 0, Degree: 1},
		}
		puzzle := hashi.Puzzle{
			Width:   4,
			Height:  4,
			Islands: islands,
			Solution: []hashi.Bridge{
				{From: islands[0], To: islands[1], Single: false},
				{From: islands[0], To: islands[2], Single: true},
			},
		}

		assert.True(t, svc.Verify(puzzle).OK)
	})

	t.Run("reports invalid puzzles as failed verdicts", func(t *testing.T) {
		puzzle := hashi.Puzzle{
			Width:    0,
			Height:   4,
			Solution: []hashi.Bridge{},
		}

		verdict := svc.Verify(puzzle)
		assert.False(t, verdict.OK)
		assert.NotEmpty(t, verdict.Reason)
	})
}
