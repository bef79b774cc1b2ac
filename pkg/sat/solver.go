package sat

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// Solvers maps every supported solver name to its constructor
var Solvers = map[string]func() SATSolver{
	"gophersat": NewGophersatSolver,
	"gini":      NewGiniSolver,
	"kissat":    NewKissatSolver,
	"cadical":   NewCadicalSolver,
	"minisat":   NewMinisatSolver,
}
