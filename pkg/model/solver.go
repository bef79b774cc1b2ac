package model

import "github.com/limaJavier/einstein/pkg/sat"

type PuzzleSolver interface {
	// Returns the true propositions of a solution, or nil facts (with nil error) when the puzzle is unsatisfiable
	Solve(
		puzzle Puzzle,
	) (facts []Fact, variables uint64, clauses uint64, err error)

	Verify(
		facts []Fact,
		puzzle Puzzle,
	) bool

	// Returns up to limit distinct solutions; a well-posed puzzle has exactly one
	Enumerate(
		puzzle Puzzle,
		limit int,
	) ([][]Fact, error)
}

func NewPuzzleSolver(solver sat.SATSolver) PuzzleSolver {
	return &satPuzzleSolver{
		solver:  solver,
		encoder: NewEncoder(),
		indexer: NewIndexer(),
	}
}

type satPuzzleSolver struct {
	solver  sat.SATSolver
	encoder Encoder
	indexer Indexer
}

func (puzzleSolver *satPuzzleSolver) Solve(puzzle Puzzle) ([]Fact, uint64, uint64, error) {
	//** Encode puzzle
	satInstance, err := puzzleSolver.encoder.Encode(puzzle)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := satInstance.Variables, uint64(len(satInstance.Clauses))

	//** Solve
	solution, err := puzzleSolver.solver.Solve(satInstance)
	if err != nil {
		return nil, variables, clauses, err
	} else if solution == nil {
		return nil, variables, clauses, nil
	}

	//** Decode
	assignment, err := AssignmentFromSolution(solution, satInstance.Variables)
	if err != nil {
		return nil, variables, clauses, err
	}
	facts, err := Decode(puzzleSolver.indexer, assignment)
	if err != nil {
		return nil, variables, clauses, err
	}
	return facts, variables, clauses, nil
}

// Verify checks that the facts, taken as the only true propositions, satisfy every axiom and clue of the puzzle
func (puzzleSolver *satPuzzleSolver) Verify(facts []Fact, puzzle Puzzle) bool {
	satInstance, err := puzzleSolver.encoder.Encode(puzzle)
	if err != nil {
		return false
	}
	assignment, err := Encode(puzzleSolver.indexer, facts)
	if err != nil {
		return false
	}
	satisfied, err := satInstance.Evaluate(assignment)
	return err == nil && satisfied
}

func (puzzleSolver *satPuzzleSolver) Enumerate(puzzle Puzzle, limit int) ([][]Fact, error) {
	satInstance, err := puzzleSolver.encoder.Encode(puzzle)
	if err != nil {
		return nil, err
	}

	solutions := make([][]Fact, 0)
	for len(solutions) < limit {
		solution, err := puzzleSolver.solver.Solve(satInstance)
		if err != nil {
			return nil, err
		} else if solution == nil {
			break
		}

		assignment, err := AssignmentFromSolution(solution, satInstance.Variables)
		if err != nil {
			return nil, err
		}
		facts, err := Decode(puzzleSolver.indexer, assignment)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, facts)

		// Placements fix every other proposition, so blocking them excludes the whole grid
		blocking := make([]int64, 0, len(CategoricalAttributes)*int(Size))
		for index, value := range assignment {
			if !value {
				continue
			}
			first, second, err := puzzleSolver.indexer.Attributes(uint64(index))
			if err != nil {
				return nil, err
			}
			if first.Attribute() != HouseAttribute && second.Attribute() == HouseAttribute {
				blocking = append(blocking, Literal(uint64(index), true))
			}
		}
		satInstance.Clauses = append(satInstance.Clauses, blocking)
	}
	return solutions, nil
}
