package sat

type cadicalSolver struct{}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(sat SAT) (SATSolution, error) {
	cadicalPath, err := getExecutablePath("cadicalPath")
	if err != nil {
		return nil, err
	}
	return runCompetitionSolver("cadical", sat, cadicalPath, "-q")
}
