package i

import "context"

// ScoredMember is a leaderboard entry: a member with its score, ordered
// ascending by score.
type ScoredMember struct {
	Member string
	Score  float64
}

// SortedBoard is a persistent score-ordered set with expiring boards.
type SortedBoard interface {
	// Record stores a member's score on the named board. An existing score
	// for the member is overwritten.
	Record(ctx context.Context, boardKey string, score float64, member string) error

	// Rank returns the member's 1-based ascending rank on the named board.
	Rank(ctx context.Context, boardKey string, member string) (int64, error)

	// Top returns up to limit members with the lowest scores.
	Top(ctx context.Context, boardKey string, limit int64) ([]ScoredMember, error)
}
