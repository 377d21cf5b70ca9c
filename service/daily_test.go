package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSortedBoard is an in-memory SortedBoard for tests.
type memSortedBoard struct {
	boards map[string]map[string]float64
}

func newMemSortedBoard() *memSortedBoard {
	return &memSortedBoard{boards: make(map[string]map[string]float64)}
}

func (m *memSortedBoard) Record(_ context.Context, boardKey string, score float64, member string) error {
	board, ok := m.boards[boardKey]
	if !ok {
		board = make(map[string]float64)
		m.boards[boardKey] = board
	}
	board[member] = score
	return nil
}

func (m *memSortedBoard) Rank(_ context.Context, boardKey string, member string) (int64, error) {
	board, ok := m.boards[boardKey]
	if !ok {
		return 0, errors.New("board not found")
	}
	score, ok := board[member]
	if !ok {
		return 0, errors.New("member not on board")
	}
	rank := int64(1)
	for other, s := range board {
		if s < score || (s == score && other < member) {
			rank++
		}
	}
	return rank, nil
}

func (m *memSortedBoard) Top(_ context.Context, boardKey string, limit int64) ([]i.ScoredMember, error) {
	var members []i.ScoredMember
	for member, score := range m.boards[boardKey] {
		members = append(members, i.ScoredMember{Member: member, Score: score})
	}
	sort.Slice(members, func(a, b int) bool { return members[a].Score < members[b].Score })
	if int64(len(members)) > limit {
		members = members[:limit]
	}
	return members, nil
}

// memLocker counts acquisitions of in-process locks.
type memLocker struct {
	acquired int
}

func (m *memLocker) Acquire(context.Context, string) (func() error, error) {
	m.acquired++
	return func() error { return nil }, nil
}

// memUserRepo is an in-memory UserRepo for tests.
type memUserRepo struct {
	users map[uuid.UUID]dmn.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]dmn.User)}
}

func (m *memUserRepo) Save(user *dmn.User) error {
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (m *memUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, errors.New("user not found")
}

func newDailyService(t *testing.T) (*Daily, *memPuzzleRepo, *memUserRepo, *memLocker) {
	t.Helper()

	puzzleRepo := newMemPuzzleRepo()
	userRepo := newMemUserRepo()
	locker := &memLocker{}

	daily, err := NewDailyService(DailyConfig{
		Puzzles:    newPuzzleService(t, puzzleRepo),
		PuzzleRepo: puzzleRepo,
		UserRepo:   userRepo,
		Board:      newMemSortedBoard(),
		Locker:     locker,
		Logger:     nopLogger{},
	})
	require.NoError(t, err)
	return daily, puzzleRepo, userRepo, locker
}

func TestDailyToday(t *testing.T) {
	t.Run("publishes one puzzle per day", func(t *testing.T) {
		daily, _, _, locker := newDailyService(t)

		first, err := daily.Today(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, first.Day)
		assert.True(t, first.Puzzle.HasSolution())

		second, err := daily.Today(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// Only the publishing call takes the lock.
		assert.Equal(t, 1, locker.acquired)
	})
}

func TestDailySubmitTime(t *testing.T) {
	t.Run("ranks submissions by elapsed time", func(t *testing.T) {
		daily, _, userRepo, _ := newDailyService(t)

		record, err := daily.Today(context.Background())
		require.NoError(t, err)
		solution := record.Puzzle.Solution

		fast := uuid.New()
		slow := uuid.New()
		require.NoError(t, userRepo.Save(&dmn.User{ID: fast, Username: "fast_solver"}))
		require.NoError(t, userRepo.Save(&dmn.User{ID: slow, Username: "slow_solver"}))

		rank, err := daily.SubmitTime(context.Background(), slow, solution, 90_000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rank)

		rank, err = daily.SubmitTime(context.Background(), fast, solution, 45_000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rank)

		rank, err = daily.SubmitTime(context.Background(), slow, solution, 90_000)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rank)

		user, err := userRepo.ByID(fast)
		require.NoError(t, err)
		assert.Equal(t, 1, user.Solved)

		top, err := daily.Leaderboard(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, fast.String(), top[0].Member)
	})

	t.Run("rejects a wrong solution", func(t *testing.T) {
		daily, _, _, _ := newDailyService(t)

		_, err := daily.Today(context.Background())
		require.NoError(t, err)

		_, err = daily.SubmitTime(context.Background(), uuid.New(), nil, 45_000)
		assert.ErrorIs(t, err, ErrRejectedSolution)
	})

	t.Run("rejects non-positive elapsed time", func(t *testing.T) {
		daily, _, _, _ := newDailyService(t)

		_, err := daily.SubmitTime(context.Background(), uuid.New(), nil, 0)
		assert.Error(t, err)
	})
}
