package model

import "github.com/limaJavier/einstein/pkg/sat"

type Encoder interface {
	// Compiles the puzzle into CNF: exclusion axioms, then consistency axioms, then the clues' clauses
	Encode(puzzle Puzzle) (sat.SAT, error)
}

func NewEncoder() Encoder {
	return &satEncoder{indexer: NewIndexer()}
}

type satEncoder struct {
	indexer Indexer
}

func (encoder *satEncoder) Encode(puzzle Puzzle) (sat.SAT, error) {
	//** Build generators in canonical order
	generators := make([]generator, 0, len(attributePairs)+len(consistencyPairs)+len(puzzle.Clues))

	// Exclusion axioms for the 15 attribute pairs
	for _, pair := range attributePairs {
		generators = append(generators, func() ([][]int64, error) {
			return ExclusionAxioms(encoder.indexer, Values(pair[0]), Values(pair[1]))
		})
	}

	// Consistency axioms for the 10 categorical pairs through the house hub
	hub := Values(HouseAttribute)
	for _, pair := range consistencyPairs {
		generators = append(generators, func() ([][]int64, error) {
			return ConsistencyAxioms(encoder.indexer, Values(pair[0]), Values(pair[1]), hub)
		})
	}

	// Puzzle-specific facts
	for _, clue := range puzzle.Clues {
		generators = append(generators, func() ([][]int64, error) {
			return clue.Clauses(encoder.indexer)
		})
	}

	//** Generate clauses
	return buildSat(Propositions, generators)
}
