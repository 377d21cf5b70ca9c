package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/beka-birhanu/hashi-api/generator"
	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/ilp"
	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/beka-birhanu/hashi-api/solver"
	"github.com/google/uuid"
)

// Largest accepted board side for generation requests.
const maxBoardSide = 50

var (
	// ErrInvalidPuzzle is returned when a submitted puzzle fails structural
	// validation before solving or verification.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrNoSolution is returned when a puzzle admits no bridge layout.
	ErrNoSolution = solver.ErrNoSolution
)

// Puzzle implements puzzle generation, retrieval, solving and verification.
type Puzzle struct {
	// The generator is not safe for concurrent use.
	genMu      sync.Mutex
	gen        *generator.Generator
	engine     ilp.Engine
	puzzleRepo i.PuzzleRepo
	logger     i.Logger
}

// PuzzleConfig holds dependencies for creating a Puzzle service.
type PuzzleConfig struct {
	Generator  *generator.Generator
	Engine     ilp.Engine
	PuzzleRepo i.PuzzleRepo
	Logger     i.Logger
}

// NewPuzzleService creates a new Puzzle service.
func NewPuzzleService(config PuzzleConfig) (*Puzzle, error) {
	if config.Generator == nil || config.Engine == nil || config.PuzzleRepo == nil || config.Logger == nil {
		return nil, errors.New("puzzle service requires a generator, an engine, a repository and a logger")
	}
	return &Puzzle{
		gen:        config.Generator,
		engine:     config.Engine,
		puzzleRepo: config.PuzzleRepo,
		logger:     config.Logger,
	}, nil
}

// Generate creates a new puzzle of the given size and difficulty and persists
// it with its planted solution.
func (p *Puzzle) Generate(ctx context.Context, width, height int, difficulty string) (*dmn.PuzzleRecord, error) {
	tier, ok := generator.ParseDifficulty(difficulty)
	if !ok {
		return nil, generator.ErrUnknownDifficulty
	}
	if width > maxBoardSide || height > maxBoardSide {
		return nil, fmt.Errorf("%w: board sides must be at most %d", ErrInvalidPuzzle, maxBoardSide)
	}

	p.genMu.Lock()
	puzzle, err := p.gen.Generate(width, height, tier)
	p.genMu.Unlock()
	if err != nil {
		return nil, err
	}

	record := &dmn.PuzzleRecord{
		ID:         uuid.New(),
		Difficulty: string(tier),
		Puzzle:     puzzle,
		CreatedAt:  time.Now().UTC(),
	}
	if err := p.puzzleRepo.Save(record); err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("Generated %s puzzle %s (%dx%d, %d islands)",
		tier, record.ID, width, height, len(puzzle.Islands)))
	return record, nil
}

// PuzzleByID retrieves a stored puzzle record.
func (p *Puzzle) PuzzleByID(id uuid.UUID) (*dmn.PuzzleRecord, error) {
	return p.puzzleRepo.ByID(id)
}

// Solve finds a bridge layout for the given puzzle question. The attached
// solution, if any, is ignored.
func (p *Puzzle) Solve(ctx context.Context, puzzle hashi.Puzzle) ([]hashi.Bridge, error) {
	if err := validatePuzzle(puzzle); err != nil {
		return nil, err
	}
	return solver.Solve(ctx, puzzle.WithoutSolution(), p.engine)
}

// Verify checks a proposed solution against the puzzle's invariants.
func (p *Puzzle) Verify(puzzle hashi.Puzzle) hashi.Verdict {
	if err := validatePuzzle(puzzle); err != nil {
		return hashi.Verdict{Reason: err.Error()}
	}
	return puzzle.Verify()
}

// validatePuzzle rejects puzzles whose islands fall outside the board or
// collide, before any board is reconstructed from them.
func validatePuzzle(puzzle hashi.Puzzle) error {
	if puzzle.Width <= 0 || puzzle.Height <= 0 {
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidPuzzle)
	}
	if puzzle.Width > maxBoardSide || puzzle.Height > maxBoardSide {
		return fmt.Errorf("%w: board sides must be at most %d", ErrInvalidPuzzle, maxBoardSide)
	}

	seen := make(map[[2]int]bool, len(puzzle.Islands))
	for _, island := range puzzle.Islands {
		if island.X < 0 || island.X >= puzzle.Width || island.Y < 0 || island.Y >= puzzle.Height {
			return fmt.Errorf("%w: island (%d, %d) is outside the board", ErrInvalidPuzzle, island.X, island.Y)
		}
		if island.Degree < 0 {
			return fmt.Errorf("%w: island (%d, %d) has a negative degree", ErrInvalidPuzzle, island.X, island.Y)
		}
		at := [2]int{island.X, island.Y}
		if seen[at] {
			return fmt.Errorf("%w: duplicate island at (%d, %d)", ErrInvalidPuzzle, island.X, island.Y)
		}
		seen[at] = true
	}
	return nil
}
