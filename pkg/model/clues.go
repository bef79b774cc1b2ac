package model

import "fmt"

// Clue is a puzzle statement translated into clauses over the indexer's propositions. Clues hold no state, so each one
// can be encoded and checked in isolation
type Clue interface {
	Clauses(indexer Indexer) ([][]int64, error)
	String() string
}

// Together states that both values belong to the same house (e.g. "the Brit lives in the red house")
type Together struct {
	First, Second Value
}

// Apart states that both values belong to different houses
type Apart struct {
	First, Second Value
}

// Located states that the value belongs to the house at the given position (e.g. "the Norwegian lives in the first house")
type Located struct {
	Value    Value
	Position Position
}

// ImmediatelyLeftOf states that the house of Left is the direct left neighbor of the house of Right
type ImmediatelyLeftOf struct {
	Left, Right Value
}

// LeftOf states that the house of Left is somewhere on the left of the house of Right
type LeftOf struct {
	Left, Right Value
}

// NextTo states that the houses of both values are adjacent, in either direction
type NextTo struct {
	First, Second Value
}

func (clue Together) Clauses(indexer Indexer) ([][]int64, error) {
	writer := newClauseWriter(indexer)
	writer.add(writer.positive(clue.First, clue.Second))
	return writer.result()
}

func (clue Apart) Clauses(indexer Indexer) ([][]int64, error) {
	writer := newClauseWriter(indexer)
	writer.add(writer.negative(clue.First, clue.Second))
	return writer.result()
}

func (clue Located) Clauses(indexer Indexer) ([][]int64, error) {
	writer := newClauseWriter(indexer)
	writer.add(writer.positive(clue.Value, clue.Position))
	return writer.result()
}

func (clue ImmediatelyLeftOf) Clauses(indexer Indexer) ([][]int64, error) {
	if err := validateRelation(clue, clue.Left, clue.Right); err != nil {
		return nil, err
	}
	positions := Values(HouseAttribute)
	last := len(positions) - 1
	writer := newClauseWriter(indexer)

	// Left has no right neighbor in the last house and Right has no left neighbor in the first one
	writer.add(writer.negative(clue.Left, positions[last]))
	writer.add(writer.negative(clue.Right, positions[0]))

	for i := range last {
		// Left at i implies Right at i+1
		writer.add(writer.negative(clue.Left, positions[i]), writer.positive(clue.Right, positions[i+1]))
		// Right at i+1 implies Left at i
		writer.add(writer.negative(clue.Right, positions[i+1]), writer.positive(clue.Left, positions[i]))
	}

	return writer.result()
}

func (clue LeftOf) Clauses(indexer Indexer) ([][]int64, error) {
	if err := validateRelation(clue, clue.Left, clue.Right); err != nil {
		return nil, err
	}
	positions := Values(HouseAttribute)
	writer := newClauseWriter(indexer)

	// Right at j implies Left at some i < j. For j = 0 the clause reduces to ¬(Right, 0)
	for j := range positions {
		literals := []int64{writer.negative(clue.Right, positions[j])}
		for i := range j {
			literals = append(literals, writer.positive(clue.Left, positions[i]))
		}
		writer.add(literals...)
	}

	// Left at i implies Right at some j > i. For the last house the clause reduces to ¬(Left, last)
	for i := range positions {
		literals := []int64{writer.negative(clue.Left, positions[i])}
		for j := i + 1; j < len(positions); j++ {
			literals = append(literals, writer.positive(clue.Right, positions[j]))
		}
		writer.add(literals...)
	}

	return writer.result()
}

func (clue NextTo) Clauses(indexer Indexer) ([][]int64, error) {
	if err := validateRelation(clue, clue.First, clue.Second); err != nil {
		return nil, err
	}
	writer := newClauseWriter(indexer)
	neighbors(writer, clue.First, clue.Second)
	neighbors(writer, clue.Second, clue.First)
	return writer.result()
}

// neighbors writes, for every position of value, a clause stating that other occupies an adjacent position. Boundary
// houses have a single neighbor, interior houses list both
func neighbors(writer *clauseWriter, value, other Value) {
	positions := Values(HouseAttribute)
	for i := range positions {
		literals := []int64{writer.negative(value, positions[i])}
		if i > 0 {
			literals = append(literals, writer.positive(other, positions[i-1]))
		}
		if i < len(positions)-1 {
			literals = append(literals, writer.positive(other, positions[i+1]))
		}
		writer.add(literals...)
	}
}

// validateRelation rejects positional relations over positions themselves or between a value and itself
func validateRelation(clue Clue, first, second Value) error {
	if !inDomain(first) || !inDomain(second) {
		return fmt.Errorf("%w: %v has an operand outside its domain", ErrInvalidClue, clue)
	}
	if first.Attribute() == HouseAttribute || second.Attribute() == HouseAttribute {
		return fmt.Errorf("%w: %v relates positions, which are not placed in houses", ErrInvalidClue, clue)
	}
	if first == second {
		return fmt.Errorf("%w: %v relates a value with itself", ErrInvalidClue, clue)
	}
	return nil
}

func (clue Together) String() string {
	return fmt.Sprintf("together(%v, %v)", operand(clue.First), operand(clue.Second))
}

func (clue Apart) String() string {
	return fmt.Sprintf("apart(%v, %v)", operand(clue.First), operand(clue.Second))
}

func (clue Located) String() string {
	return fmt.Sprintf("located(%v, %v)", operand(clue.Value), operand(clue.Position))
}

func (clue ImmediatelyLeftOf) String() string {
	return fmt.Sprintf("immediatelyLeftOf(%v, %v)", operand(clue.Left), operand(clue.Right))
}

func (clue LeftOf) String() string {
	return fmt.Sprintf("leftOf(%v, %v)", operand(clue.Left), operand(clue.Right))
}

func (clue NextTo) String() string {
	return fmt.Sprintf("nextTo(%v, %v)", operand(clue.First), operand(clue.Second))
}

func operand(value Value) string {
	if value == nil {
		return "<nil>"
	}
	return Operand(value)
}

// EinsteinClues returns the fifteen statements of Einstein's puzzle
func EinsteinClues() []Clue {
	return []Clue{
		Together{Brit, Red},
		Together{Swede, Dogs},
		Together{Dane, Tea},
		ImmediatelyLeftOf{Green, White},
		Together{Green, Coffee},
		Together{PallMall, Birds},
		Together{Yellow, Dunhill},
		Located{Milk, 2},
		Located{Norwegian, 0},
		NextTo{Blends, Cats},
		NextTo{Horse, Dunhill},
		Together{BlueMasters, Beer},
		Together{German, Prince},
		NextTo{Norwegian, Blue},
		NextTo{Blends, Water},
	}
}
