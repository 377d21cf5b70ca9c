// Package puzzleapi handles puzzle generation, solving, verification and the
// daily challenge over HTTP.
package puzzleapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/hashi-api/api/identity"
	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/generator"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/service"
	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardLimit = 10

// PuzzleController manages puzzle operations.
type PuzzleController struct {
	puzzleService i.PuzzleService
	daily         i.DailyChallenge
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(ps i.PuzzleService, daily i.DailyChallenge) (*PuzzleController, error) {
	if ps == nil || daily == nil {
		return nil, errors.New("puzzle controller requires a puzzle service and a daily challenge")
	}
	return &PuzzleController{
		puzzleService: ps,
		daily:         daily,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.GET("/daily", pc.dailyPuzzle)
		puzzles.GET("/daily/leaderboard", pc.dailyLeaderboard)
		puzzles.GET("/:id", pc.puzzleByID)
		puzzles.GET("/:id/render", pc.renderPuzzle)
		puzzles.POST("/solve", pc.solve)
		puzzles.POST("/verify", pc.verify)
	}
}

// RegisterProtected registers privileged routes.
func (pc *PuzzleController) RegisterProtected(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("/", pc.generate)
		puzzles.GET("/:id/solution", pc.solution)
		puzzles.POST("/daily/times", pc.submitTime)
	}
}

// generate handles puzzle generation requests.
func (pc *PuzzleController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := pc.puzzleService.Generate(ctx, request.Width, request.Height, request.Difficulty)
	if err != nil {
		switch {
		case errors.Is(err, generator.ErrUnknownDifficulty),
			errors.Is(err, generator.ErrBoardTooSmall),
			errors.Is(err, service.ErrInvalidPuzzle):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating puzzle"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newPuzzleResponse(record))
}

// puzzleByID returns the question form of a stored puzzle.
func (pc *PuzzleController) puzzleByID(ctx *gin.Context) {
	record, ok := pc.recordFromPath(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newPuzzleResponse(record))
}

// renderPuzzle returns the question form of a stored puzzle as a text board.
func (pc *PuzzleController) renderPuzzle(ctx *gin.Context) {
	record, ok := pc.recordFromPath(ctx)
	if !ok {
		return
	}

	board, err := record.Question().Render()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering puzzle"})
		return
	}
	ctx.String(http.StatusOK, board)
}

// solution returns the stored solution of a puzzle, either as bridges or,
// with ?render=true, as a text board with the bridges drawn in.
func (pc *PuzzleController) solution(ctx *gin.Context) {
	record, ok := pc.recordFromPath(ctx)
	if !ok {
		return
	}

	if ctx.Query("render") == "true" {
		board, err := record.Puzzle.Render()
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering puzzle"})
			return
		}
		ctx.String(http.StatusOK, board)
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{Bridges: record.Puzzle.Solution})
}

// solve finds a bridge layout for a submitted puzzle question.
func (pc *PuzzleController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle := hashi.Puzzle{
		Width:   request.Width,
		Height:  request.Height,
		Islands: request.Islands,
	}
	bridges, err := pc.puzzleService.Solve(ctx, puzzle)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSolution):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "puzzle has no solution"})
		case errors.Is(err, service.ErrInvalidPuzzle):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving puzzle"})
		}
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{Bridges: bridges})
}

// verify checks a submitted solution against its puzzle.
func (pc *PuzzleController) verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle := hashi.Puzzle{
		Width:    request.Width,
		Height:   request.Height,
		Islands:  request.Islands,
		Solution: request.Solution,
	}
	verdict := pc.puzzleService.Verify(puzzle)

	ctx.JSON(http.StatusOK, &VerifyResponse{
		OK:        verdict.OK,
		Reason:    verdict.Reason,
		Unreached: verdict.Unreached,
	})
}

// dailyPuzzle returns the question form of today's shared puzzle.
func (pc *PuzzleController) dailyPuzzle(ctx *gin.Context) {
	record, err := pc.daily.Today(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading daily puzzle"})
		return
	}
	ctx.JSON(http.StatusOK, newPuzzleResponse(record))
}

// submitTime records the caller's solve time for today's puzzle.
func (pc *PuzzleController) submitTime(ctx *gin.Context) {
	userID, err := callerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SubmitTimeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rank, err := pc.daily.SubmitTime(ctx, userID, request.Solution, request.ElapsedMillis)
	if err != nil {
		if errors.Is(err, service.ErrRejectedSolution) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while recording solve time"})
		return
	}

	ctx.JSON(http.StatusOK, &RankResponse{Rank: rank})
}

// dailyLeaderboard returns the fastest solvers of today's puzzle.
func (pc *PuzzleController) dailyLeaderboard(ctx *gin.Context) {
	entries, err := pc.daily.Leaderboard(ctx, defaultLeaderboardLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading leaderboard"})
		return
	}

	rows := make([]LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, LeaderboardEntry{
			UserID:        entry.Member,
			ElapsedMillis: int64(entry.Score),
		})
	}
	ctx.JSON(http.StatusOK, rows)
}

// recordFromPath loads the puzzle record named by the :id path parameter,
// writing the error response itself on failure.
func (pc *PuzzleController) recordFromPath(ctx *gin.Context) (*dmn.PuzzleRecord, bool) {
	idString := ctx.Params.ByName("id")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return nil, false
	}

	record, err := pc.puzzleService.PuzzleByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return nil, false
	}
	return record, true
}

// callerID extracts the authenticated user's ID from the claims the
// authorization middleware attached.
func callerID(ctx *gin.Context) (uuid.UUID, error) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, errors.New("no claims on request")
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed claims on request")
	}
	return uuid.Parse(fmt.Sprint(claims["userID"]))
}
