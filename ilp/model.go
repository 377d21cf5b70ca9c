// Package ilp is a small declarative modeling layer for integer programs:
// bounded non-negative integer variables, linear constraints and a linear
// minimization objective. Models are handed to an Engine for solving; the
// package itself performs no search.
package ilp

import (
	"context"
	"errors"
	"fmt"
)

// ErrInfeasible is returned by an Engine when no assignment satisfies the
// model's constraints.
var ErrInfeasible = errors.New("model is infeasible")

// Var is a handle to a model variable.
type Var int

// Op is a linear constraint comparison operator.
type Op uint8

const (
	LE Op = iota // less than or equal
	GE           // greater than or equal
	EQ           // equal
)

// Term is a coefficient applied to a variable.
type Term struct {
	Var  Var
	Coef int
}

// Constraint compares a linear combination of variables against a constant.
type Constraint struct {
	Terms []Term
	Op    Op
	RHS   int
}

type varInfo struct {
	name string
	hi   int
}

// Model is a set of variables and constraints under construction. It is not
// safe for concurrent use.
type Model struct {
	vars        []varInfo
	constraints []Constraint
	objective   []Term
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Binary declares a {0, 1} variable.
func (m *Model) Binary(name string) Var {
	return m.IntVar(name, 1)
}

// IntVar declares an integer variable bounded to [0, hi]. A negative bound is
// a caller error.
func (m *Model) IntVar(name string, hi int) Var {
	if hi < 0 {
		panic(fmt.Sprintf("ilp: variable %s has negative upper bound %d", name, hi))
	}
	m.vars = append(m.vars, varInfo{name: name, hi: hi})
	return Var(len(m.vars) - 1)
}

// AddLE constrains the sum of terms to be at most rhs.
func (m *Model) AddLE(terms []Term, rhs int) {
	m.constraints = append(m.constraints, Constraint{Terms: terms, Op: LE, RHS: rhs})
}

// AddGE constrains the sum of terms to be at least rhs.
func (m *Model) AddGE(terms []Term, rhs int) {
	m.constraints = append(m.constraints, Constraint{Terms: terms, Op: GE, RHS: rhs})
}

// AddEQ constrains the sum of terms to equal rhs.
func (m *Model) AddEQ(terms []Term, rhs int) {
	m.constraints = append(m.constraints, Constraint{Terms: terms, Op: EQ, RHS: rhs})
}

// Minimize sets the objective. Engines treat the objective as a tie-break
// among feasible assignments; a model without one is a pure feasibility
// problem.
func (m *Model) Minimize(terms []Term) {
	m.objective = terms
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int {
	return len(m.vars)
}

// Bound returns the upper bound of v.
func (m *Model) Bound(v Var) int {
	return m.vars[v].hi
}

// Name returns the declared name of v.
func (m *Model) Name(v Var) string {
	return m.vars[v].name
}

// Constraints returns the model's constraints. The slice is shared; callers
// must not mutate it.
func (m *Model) Constraints() []Constraint {
	return m.constraints
}

// Objective returns the minimization terms, or nil for feasibility models.
func (m *Model) Objective() []Term {
	return m.objective
}

// Assignment maps every model variable to its solved value, indexed by Var.
type Assignment []int

// Value returns the solved value of v.
func (a Assignment) Value(v Var) int {
	return a[v]
}

// Eval computes the value of a linear combination under the assignment.
func (a Assignment) Eval(terms []Term) int {
	total := 0
	for _, term := range terms {
		total += term.Coef * a[term.Var]
	}
	return total
}

// Engine solves models. Implementations return ErrInfeasible when the
// constraints admit no assignment; any other error is an engine failure.
type Engine interface {
	Solve(ctx context.Context, m *Model) (Assignment, error)
}
