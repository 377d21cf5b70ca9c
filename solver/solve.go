package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/hashi-api/hashi"
	"github.com/beka-birhanu/hashi-api/ilp"
)

// ErrNoSolution reports that the puzzle admits no valid bridge layout. It is
// a user-visible outcome, not an engine fault: hand-entered puzzles may well
// be malformed.
var ErrNoSolution = errors.New("puzzle has no solution")

// Solve formulates the puzzle as an integer program and delegates the search
// to the engine. Per candidate bridge (i, j) the model carries a bridge
// weight b ∈ {0, 1, 2}, an existence indicator y and two directed flow
// variables bounded by islandCount−1; a single-commodity flow rooted at
// island 0 forces the realized bridges to form a connected graph. The
// objective minimizes total bridge weight, which only tie-breaks among
// feasible layouts.
func Solve(ctx context.Context, puzzle hashi.Puzzle, engine ilp.Engine) ([]hashi.Bridge, error) {
	islandCount := len(puzzle.Islands)
	candidates := Candidates(puzzle)
	crossings := Crossings(puzzle, candidates)

	model := ilp.NewModel()
	weight := make([]ilp.Var, len(candidates))
	exists := make([]ilp.Var, len(candidates))
	flowFwd := make([]ilp.Var, len(candidates)) // flow I -> J
	flowRev := make([]ilp.Var, len(candidates)) // flow J -> I
	for k, c := range candidates {
		weight[k] = model.IntVar(fmt.Sprintf("b_%d_%d", c.I, c.J), 2)
		exists[k] = model.Binary(fmt.Sprintf("y_%d_%d", c.I, c.J))
		flowFwd[k] = model.IntVar(fmt.Sprintf("f_%d_%d", c.I, c.J), islandCount-1)
		flowRev[k] = model.IntVar(fmt.Sprintf("f_%d_%d", c.J, c.I), islandCount-1)
	}

	objective := make([]ilp.Term, len(candidates))
	for k := range candidates {
		objective[k] = ilp.Term{Var: weight[k], Coef: 1}
	}
	model.Minimize(objective)

	// Degree: the weights of all candidates touching an island sum to its
	// required degree.
	for i, island := range puzzle.Islands {
		var terms []ilp.Term
		for k, c := range candidates {
			if c.I == i || c.J == i {
				terms = append(terms, ilp.Term{Var: weight[k], Coef: 1})
			}
		}
		model.AddEQ(terms, island.Degree)
	}

	// Existence linkage: y <= b <= 2y.
	for k := range candidates {
		model.AddGE([]ilp.Term{{Var: weight[k], Coef: 1}, {Var: exists[k], Coef: -1}}, 0)
		model.AddLE([]ilp.Term{{Var: weight[k], Coef: 1}, {Var: exists[k], Coef: -2}}, 0)
	}

	// No crossing: at most one of a crossing pair may be realized.
	for _, pair := range crossings {
		model.AddLE([]ilp.Term{
			{Var: exists[pair.A], Coef: 1},
			{Var: exists[pair.B], Coef: 1},
		}, 1)
	}

	// Flow conservation: island 0 emits islandCount-1 units of net flow,
	// every other island consumes one.
	for i := range puzzle.Islands {
		var terms []ilp.Term
		for k, c := range candidates {
			switch i {
			case c.I:
				terms = append(terms, ilp.Term{Var: flowFwd[k], Coef: 1}, ilp.Term{Var: flowRev[k], Coef: -1})
			case c.J:
				terms = append(terms, ilp.Term{Var: flowRev[k], Coef: 1}, ilp.Term{Var: flowFwd[k], Coef: -1})
			}
		}
		if i == 0 {
			model.AddEQ(terms, islandCount-1)
		} else {
			model.AddEQ(terms, -1)
		}
	}

	// Flow capacity: flow may only route over realized bridges.
	for k := range candidates {
		model.AddLE([]ilp.Term{
			{Var: flowFwd[k], Coef: 1},
			{Var: flowRev[k], Coef: 1},
			{Var: exists[k], Coef: -(islandCount - 1)},
		}, 0)
	}

	assignment, err := engine.Solve(ctx, model)
	if errors.Is(err, ilp.ErrInfeasible) {
		return nil, ErrNoSolution
	}
	if err != nil {
		return nil, fmt.Errorf("solving puzzle model: %w", err)
	}

	var bridges []hashi.Bridge
	for k, c := range candidates {
		count := assignment.Value(weight[k])
		if count > 0 {
			bridges = append(bridges, hashi.Bridge{
				From:   puzzle.Islands[c.I],
				To:     puzzle.Islands[c.J],
				Single: count == 1,
			})
		}
	}
	return bridges, nil
}
