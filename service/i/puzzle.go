package i

import (
	"context"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/google/uuid"
)

// PuzzleService manages the lifecycle of puzzles: generation, retrieval,
// solving and verification.
type PuzzleService interface {
	// Generate creates a new puzzle of the given size and difficulty and
	// persists it with its planted solution.
	Generate(ctx context.Context, width, height int, difficulty string) (*dmn.PuzzleRecord, error)

	// PuzzleByID retrieves a stored puzzle record.
	PuzzleByID(id uuid.UUID) (*dmn.PuzzleRecord, error)

	// Solve finds a bridge layout for the given puzzle question.
	Solve(ctx context.Context, puzzle hashi.Puzzle) ([]hashi.Bridge, error)

	// Verify checks a proposed solution against the puzzle's invariants.
	Verify(puzzle hashi.Puzzle) hashi.Verdict
}

// DailyChallenge manages the shared daily puzzle and its leaderboard.
type DailyChallenge interface {
	// Today returns the puzzle record for the current day, generating and
	// publishing one if no instance exists yet.
	Today(ctx context.Context) (*dmn.PuzzleRecord, error)

	// SubmitTime records a user's solve time for the current day's puzzle
	// and returns their 1-based rank.
	SubmitTime(ctx context.Context, userID uuid.UUID, solution []hashi.Bridge, elapsedMillis int64) (int64, error)

	// Leaderboard returns the fastest entries for the current day.
	Leaderboard(ctx context.Context, limit int64) ([]ScoredMember, error)
}
