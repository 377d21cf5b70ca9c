// Package pbsolver adapts the gophersat pseudo-Boolean solver into the
// generic ilp.Engine capability. Bounded integer variables are encoded as
// weighted binary expansions; the minimization objective is handled by
// iterative bound tightening: solve, cap the objective below the incumbent,
// and repeat until the solver reports unsatisfiable.
package pbsolver

import (
	"context"
	"math/bits"

	"github.com/beka-birhanu/hashi-api/ilp"
	gophersat "github.com/crillab/gophersat/solver"
)

// Engine solves ilp models with gophersat. The zero value is ready to use;
// an Engine is stateless and safe for concurrent use.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Solve implements ilp.Engine.
func (e *Engine) Solve(ctx context.Context, m *ilp.Model) (ilp.Assignment, error) {
	enc := newEncoder(m)
	base, feasible := enc.baseConstraints()
	if !feasible {
		return nil, ilp.ErrInfeasible
	}

	objLits, objWeights, objOffset := enc.normalizedObjective()

	var best ilp.Assignment
	bound := -1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		constrs := base
		if bound >= 0 {
			capped := make([]gophersat.PBConstr, len(base), len(base)+1)
			copy(capped, base)
			if c, ok := atMost(objLits, objWeights, bound); ok {
				capped = append(capped, c)
			}
			constrs = capped
		}

		s := gophersat.New(gophersat.ParsePBConstrs(constrs))
		if s.Solve() != gophersat.Sat {
			if best == nil {
				return nil, ilp.ErrInfeasible
			}
			return best, nil
		}
		best = enc.decode(s.Model())

		if len(objLits) == 0 {
			return best, nil
		}
		value := best.Eval(m.Objective()) - objOffset
		if value <= 0 {
			// The objective hit its floor; no tighter assignment exists.
			return best, nil
		}
		bound = value - 1
	}
}

// encoder assigns gophersat literals to the bits of every model variable.
// A variable bounded by hi gets bits.Len(hi) literals with weights 1, 2, 4…;
// binaries collapse to a single literal.
type encoder struct {
	model   *ilp.Model
	varBits [][]int
	numLits int
}

func newEncoder(m *ilp.Model) *encoder {
	enc := &encoder{
		model:   m,
		varBits: make([][]int, m.NumVars()),
	}
	for v := 0; v < m.NumVars(); v++ {
		width := bits.Len(uint(m.Bound(ilp.Var(v))))
		lits := make([]int, width)
		for k := range lits {
			enc.numLits++
			lits[k] = enc.numLits
		}
		enc.varBits[v] = lits
	}
	return enc
}

// baseConstraints translates variable bounds and model constraints into
// normalized at-least constraints. feasible is false when a constraint is
// trivially unsatisfiable (for example an empty degree sum required to be
// positive).
func (enc *encoder) baseConstraints() (constrs []gophersat.PBConstr, feasible bool) {
	add := func(c gophersat.PBConstr, ok bool) {
		if ok {
			constrs = append(constrs, c)
		}
	}

	for v := 0; v < enc.model.NumVars(); v++ {
		lits := enc.varBits[v]
		hi := enc.model.Bound(ilp.Var(v))
		if full := (1 << len(lits)) - 1; full > hi {
			weights := make([]int, len(lits))
			for k := range weights {
				weights[k] = 1 << k
			}
			add(atMost(lits, weights, hi))
		}
	}

	for _, constraint := range enc.model.Constraints() {
		lits, weights := enc.expand(constraint.Terms)
		if constraint.Op == ilp.GE || constraint.Op == ilp.EQ {
			c, ok, conflicting := atLeast(lits, weights, constraint.RHS)
			if conflicting {
				return nil, false
			}
			add(c, ok)
		}
		if constraint.Op == ilp.LE || constraint.Op == ilp.EQ {
			negLits, negWeights := negateTerms(lits, weights)
			c, ok, conflicting := atLeast(negLits, negWeights, -constraint.RHS)
			if conflicting {
				return nil, false
			}
			add(c, ok)
		}
	}
	return constrs, true
}

// expand rewrites linear terms over integer variables into literal/weight
// pairs over their bits.
func (enc *encoder) expand(terms []ilp.Term) (lits []int, weights []int) {
	for _, term := range terms {
		if term.Coef == 0 {
			continue
		}
		for k, lit := range enc.varBits[term.Var] {
			lits = append(lits, lit)
			weights = append(weights, term.Coef<<k)
		}
	}
	return lits, weights
}

// normalizedObjective returns the objective as positive-weight literals plus
// the constant offset introduced by flipping negative-weight literals, so
// that objective value == offset + Σ weights over true literals.
func (enc *encoder) normalizedObjective() (lits []int, weights []int, offset int) {
	rawLits, rawWeights := enc.expand(enc.model.Objective())
	for i, w := range rawWeights {
		if w < 0 {
			lits = append(lits, -rawLits[i])
			weights = append(weights, -w)
			offset += w
		} else {
			lits = append(lits, rawLits[i])
			weights = append(weights, w)
		}
	}
	return lits, weights, offset
}

// decode reads variable values back out of a gophersat model. Literals the
// solver never saw (possible when a variable appears in no constraint) read
// as false.
func (enc *encoder) decode(model []bool) ilp.Assignment {
	values := make(ilp.Assignment, enc.model.NumVars())
	for v := range values {
		total := 0
		for k, lit := range enc.varBits[v] {
			if lit-1 < len(model) && model[lit-1] {
				total += 1 << k
			}
		}
		values[v] = total
	}
	return values
}

// atLeast builds Σ weights·lits >= n in gophersat's normal form: negative
// weights flip their literal and raise the degree. ok is false for a
// trivially satisfied constraint, conflicting is true for a trivially
// unsatisfiable one.
func atLeast(lits []int, weights []int, n int) (c gophersat.PBConstr, ok, conflicting bool) {
	var normLits, normWeights []int
	total := 0
	for i, w := range weights {
		switch {
		case w == 0:
			continue
		case w < 0:
			normLits = append(normLits, -lits[i])
			normWeights = append(normWeights, -w)
			n += -w
			total += -w
		default:
			normLits = append(normLits, lits[i])
			normWeights = append(normWeights, w)
			total += w
		}
	}

	if n <= 0 {
		return gophersat.PBConstr{}, false, false
	}
	if total < n {
		return gophersat.PBConstr{}, false, true
	}
	return gophersat.GtEq(normLits, normWeights, n), true, false
}

// atMost builds Σ weights·lits <= n for non-negative weights. ok is false
// when the bound exceeds the attainable sum, making the constraint vacuous.
func atMost(lits []int, weights []int, n int) (gophersat.PBConstr, bool) {
	negLits, negWeights := negateTerms(lits, weights)
	c, ok, _ := atLeast(negLits, negWeights, -n)
	return c, ok
}

func negateTerms(lits []int, weights []int) ([]int, []int) {
	negWeights := make([]int, len(weights))
	for i, w := range weights {
		negWeights[i] = -w
	}
	return lits, negWeights
}
