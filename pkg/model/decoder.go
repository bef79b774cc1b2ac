package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/einstein/pkg/sat"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Fact is a true proposition: both values hold for the same house. First always precedes Second in canonical order
type Fact struct {
	First, Second Value
}

func (fact Fact) String() string {
	return fmt.Sprintf("%v %v", Operand(fact.First), Operand(fact.Second))
}

// House is a row of the solution grid
type House struct {
	Position    Position
	Nationality Nationality
	Color       Color
	Beverage    Beverage
	Cigar       Cigar
	Pet         Pet
}

// Values returns the house's values in canonical attribute order
func (house House) Values() []Value {
	return []Value{house.Nationality, house.Color, house.Beverage, house.Cigar, house.Pet, house.Position}
}

// Facts returns the 15 propositions that hold for the house
func (house House) Facts() []Fact {
	values := house.Values()
	facts := make([]Fact, 0, len(attributePairs))
	for i := range len(values) - 1 {
		for j := i + 1; j < len(values); j++ {
			facts = append(facts, Fact{values[i], values[j]})
		}
	}
	return facts
}

// Decode returns the true propositions of an assignment indexed by proposition
func Decode(indexer Indexer, assignment []bool) ([]Fact, error) {
	if uint64(len(assignment)) != Propositions {
		return nil, fmt.Errorf("%w: expected %d values but got %d", ErrMalformedAssignment, Propositions, len(assignment))
	}

	facts := make([]Fact, 0)
	for index, value := range assignment {
		if !value {
			continue
		}
		first, second, err := indexer.Attributes(uint64(index))
		if err != nil {
			return nil, err
		}
		facts = append(facts, Fact{first, second})
	}
	return facts, nil
}

// Encode is the inverse of Decode: it returns the assignment where exactly the given facts hold
func Encode(indexer Indexer, facts []Fact) ([]bool, error) {
	assignment := make([]bool, Propositions)
	for _, fact := range facts {
		index, err := indexer.Index(fact.First, fact.Second)
		if err != nil {
			return nil, err
		}
		assignment[index] = true
	}
	return assignment, nil
}

// AssignmentFromSolution transforms the signed literals returned by a solver into an assignment indexed by proposition.
// Variables missing from the solution are false
func AssignmentFromSolution(solution sat.SATSolution, variables uint64) ([]bool, error) {
	assignment := make([]bool, variables)
	for _, literal := range solution {
		if literal == 0 || Proposition(literal) >= variables {
			return nil, fmt.Errorf("%w: literal %d is outside the %d variables", ErrMalformedAssignment, literal, variables)
		}
		if literal > 0 {
			assignment[Proposition(literal)] = true
		}
	}
	return assignment, nil
}

// Render lists the facts one per line, ordered by the first value's attribute, then by the paired attribute, then by
// both values
func Render(facts []Fact) string {
	sorted := slices.Clone(facts)
	slices.SortFunc(sorted, func(a, b Fact) int {
		return cmp.Or(
			cmp.Compare(a.First.Attribute(), b.First.Attribute()),
			cmp.Compare(a.Second.Attribute(), b.Second.Attribute()),
			cmp.Compare(a.First.Index(), b.First.Index()),
			cmp.Compare(a.Second.Index(), b.Second.Index()),
		)
	})

	var builder strings.Builder
	for _, fact := range sorted {
		builder.WriteString(fact.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// Houses arranges the facts into the solution grid. Every categorical value must be placed in exactly one house and
// every house must receive exactly one value of each attribute
func Houses(facts []Fact) ([]House, error) {
	houses := make([]House, Size)
	for position := range houses {
		houses[position].Position = Position(position)
	}

	positions := lo.Map(Values(HouseAttribute), func(value Value, _ int) any { return value })
	for _, attribute := range CategoricalAttributes {
		// Placements of the attribute's values, taken from the (attribute, house) propositions
		placements := make(map[[2]uint64]bool)
		for _, fact := range facts {
			if fact.First.Attribute() == attribute && fact.Second.Attribute() == HouseAttribute {
				placements[[2]uint64{fact.First.Index(), fact.Second.Index()}] = true
			}
		}
		if uint64(len(placements)) != Size {
			return nil, fmt.Errorf("%w: %d placements of %v values instead of %d", ErrIncompleteSolution, len(placements), attribute, Size)
		}

		values := lo.Map(Values(attribute), func(value Value, _ int) any { return value })
		neighbors := func(valueAny any, positionAny any) (bool, error) {
			return placements[[2]uint64{valueAny.(Value).Index(), positionAny.(Value).Index()}], nil
		}

		graph, err := bipartitegraph.NewBipartiteGraph(values, positions, neighbors)
		if err != nil {
			return nil, err
		}

		// Check the matching is a perfect one
		matching := graph.LargestMatching()
		if uint64(len(matching)) != Size {
			return nil, fmt.Errorf("%w: %v values cannot be matched to distinct houses", ErrIncompleteSolution, attribute)
		}

		for _, edge := range matching {
			valueIndex, position := uint64(edge.Node1), edge.Node2-len(values)
			switch attribute {
			case NationalityAttribute:
				houses[position].Nationality = Nationality(valueIndex)
			case ColorAttribute:
				houses[position].Color = Color(valueIndex)
			case BeverageAttribute:
				houses[position].Beverage = Beverage(valueIndex)
			case CigarAttribute:
				houses[position].Cigar = Cigar(valueIndex)
			case PetAttribute:
				houses[position].Pet = Pet(valueIndex)
			}
		}
	}

	return houses, nil
}
