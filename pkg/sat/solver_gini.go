package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.New()
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case unsatisfiable:
		return nil, nil
	case satisfiable:
	default:
		return nil, fmt.Errorf("gini could not decide the instance")
	}

	// Variables absent from every clause are unknown to gini and reported as false
	model := make([]bool, sat.Variables)
	for i := range model {
		variable := z.Var(i + 1)
		if variable <= g.MaxVar() {
			model[i] = g.Value(variable.Pos())
		}
	}
	return modelToSolution(model, sat.Variables), nil
}
