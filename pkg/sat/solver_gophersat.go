package sat

import (
	"fmt"

	"github.com/samber/lo"

	gophersat "github.com/crillab/gophersat/solver"
)

// gophersatSolver runs the CDCL solver of gophersat in-process, so no executable needs to be configured
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(sat SAT) (SATSolution, error) {
	clauses := lo.Map(sat.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})

	instance := gophersat.New(gophersat.ParseSlice(clauses))
	switch instance.Solve() {
	case gophersat.Unsat:
		return nil, nil
	case gophersat.Sat:
	default:
		return nil, fmt.Errorf("gophersat could not decide the instance")
	}

	return modelToSolution(instance.Model(), sat.Variables), nil
}
