package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/google/uuid"
)

const (
	dayFormat = "2006-01-02"

	// board and lock key formats, keyed by day
	dailyTimesKeyFmt = "daily:%s:times"
	dailyLockFmt     = "daily:%s:lock"

	// shape of the shared daily puzzle
	dailyWidth      = 9
	dailyHeight     = 9
	dailyDifficulty = "medium"
)

// ErrRejectedSolution is returned when a submitted daily solution fails
// verification.
var ErrRejectedSolution = errors.New("solution does not solve the daily puzzle")

// Daily implements the shared daily challenge: one puzzle per calendar day
// (UTC) and a solve-time leaderboard for it.
type Daily struct {
	puzzles    i.PuzzleService
	puzzleRepo i.PuzzleRepo
	userRepo   i.UserRepo
	board      i.SortedBoard
	locker     i.Locker
	logger     i.Logger
}

// DailyConfig holds dependencies for creating a Daily service.
type DailyConfig struct {
	Puzzles    i.PuzzleService
	PuzzleRepo i.PuzzleRepo
	UserRepo   i.UserRepo
	Board      i.SortedBoard
	Locker     i.Locker
	Logger     i.Logger
}

// NewDailyService creates a new Daily service.
func NewDailyService(config DailyConfig) (*Daily, error) {
	if config.Puzzles == nil || config.PuzzleRepo == nil || config.UserRepo == nil ||
		config.Board == nil || config.Locker == nil || config.Logger == nil {
		return nil, errors.New("daily service requires all of its dependencies")
	}
	return &Daily{
		puzzles:    config.Puzzles,
		puzzleRepo: config.PuzzleRepo,
		userRepo:   config.UserRepo,
		board:      config.Board,
		locker:     config.Locker,
		logger:     config.Logger,
	}, nil
}

// Today returns the puzzle record for the current day, generating and
// publishing one if no instance exists yet. Generation is guarded by a
// distributed lock so concurrent instances publish a single puzzle.
func (d *Daily) Today(ctx context.Context) (*dmn.PuzzleRecord, error) {
	day := time.Now().UTC().Format(dayFormat)

	if record, err := d.puzzleRepo.ByDay(day); err == nil {
		return record, nil
	}

	release, err := d.locker.Acquire(ctx, fmt.Sprintf(dailyLockFmt, day))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(); err != nil {
			d.logger.Warning(fmt.Sprintf("Releasing daily generation lock: %v", err))
		}
	}()

	// Another instance may have published while we waited for the lock.
	if record, err := d.puzzleRepo.ByDay(day); err == nil {
		return record, nil
	}

	record, err := d.puzzles.Generate(ctx, dailyWidth, dailyHeight, dailyDifficulty)
	if err != nil {
		return nil, err
	}
	record.Day = day
	if err := d.puzzleRepo.Save(record); err != nil {
		return nil, err
	}

	d.logger.Info(fmt.Sprintf("Published daily puzzle %s for %s", record.ID, day))
	return record, nil
}

// SubmitTime records a user's solve time for the current day's puzzle and
// returns their 1-based rank. The submitted bridges must solve today's
// puzzle exactly.
func (d *Daily) SubmitTime(ctx context.Context, userID uuid.UUID, solution []hashi.Bridge, elapsedMillis int64) (int64, error) {
	if elapsedMillis <= 0 {
		return 0, errors.New("elapsed time must be positive")
	}

	record, err := d.Today(ctx)
	if err != nil {
		return 0, err
	}

	verdict := record.Question().WithSolution(solution).Verify()
	if !verdict.OK {
		return 0, fmt.Errorf("%w: %s", ErrRejectedSolution, verdict.String())
	}

	boardKey := fmt.Sprintf(dailyTimesKeyFmt, record.Day)
	if err := d.board.Record(ctx, boardKey, float64(elapsedMillis), userID.String()); err != nil {
		return 0, err
	}

	if user, err := d.userRepo.ByID(userID); err == nil {
		user.RecordSolve()
		if err := d.userRepo.Save(user); err != nil {
			d.logger.Warning(fmt.Sprintf("Updating solve count for %s: %v", userID, err))
		}
	}

	return d.board.Rank(ctx, boardKey, userID.String())
}

// Leaderboard returns the fastest entries for the current day.
func (d *Daily) Leaderboard(ctx context.Context, limit int64) ([]i.ScoredMember, error) {
	record, err := d.Today(ctx)
	if err != nil {
		return nil, err
	}
	return d.board.Top(ctx, fmt.Sprintf(dailyTimesKeyFmt, record.Day), limit)
}
