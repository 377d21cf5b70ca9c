// Package puzzleapi provides structures and utilities for the puzzle HTTP endpoints.
package puzzleapi

import (
	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/hashi"
)

// GenerateRequest represents a request to generate a new puzzle.
type GenerateRequest struct {
	Width      int    `json:"width" binding:"required"`
	Height     int    `json:"height" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// SolveRequest carries a puzzle question to be solved.
type SolveRequest struct {
	Width   int            `json:"width" binding:"required"`
	Height  int            `json:"height" binding:"required"`
	Islands []hashi.Island `json:"islands" binding:"required"`
}

// VerifyRequest carries a puzzle together with a proposed solution.
type VerifyRequest struct {
	Width    int            `json:"width" binding:"required"`
	Height   int            `json:"height" binding:"required"`
	Islands  []hashi.Island `json:"islands" binding:"required"`
	Solution []hashi.Bridge `json:"solution" binding:"required"`
}

// SubmitTimeRequest records a solve of the daily puzzle.
type SubmitTimeRequest struct {
	Solution      []hashi.Bridge `json:"solution" binding:"required"`
	ElapsedMillis int64          `json:"elapsed_millis" binding:"required"`
}

// PuzzleResponse is the question form of a stored puzzle. It never carries
// the stored solution.
type PuzzleResponse struct {
	ID         string         `json:"id"`
	Day        string         `json:"day,omitempty"`
	Difficulty string         `json:"difficulty"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Islands    []hashi.Island `json:"islands"`
}

// newPuzzleResponse builds the public view of a puzzle record.
func newPuzzleResponse(record *dmn.PuzzleRecord) *PuzzleResponse {
	question := record.Question()
	return &PuzzleResponse{
		ID:         record.ID.String(),
		Day:        record.Day,
		Difficulty: record.Difficulty,
		Width:      question.Width,
		Height:     question.Height,
		Islands:    question.Islands,
	}
}

// SolveResponse carries the bridges of a found solution.
type SolveResponse struct {
	Bridges []hashi.Bridge `json:"bridges"`
}

// VerifyResponse is the structured outcome of a verification.
type VerifyResponse struct {
	OK        bool           `json:"ok"`
	Reason    string         `json:"reason,omitempty"`
	Unreached []hashi.Island `json:"unreached,omitempty"`
}

// RankResponse carries a user's 1-based leaderboard rank.
type RankResponse struct {
	Rank int64 `json:"rank"`
}

// LeaderboardEntry is one row of the daily leaderboard.
type LeaderboardEntry struct {
	UserID        string `json:"user_id"`
	ElapsedMillis int64  `json:"elapsed_millis"`
}
