package model

import "github.com/samber/lo"

// einsteinSolution is the unique solution of Einstein's puzzle
func einsteinSolution() []House {
	return []House{
		{Position: 0, Nationality: Norwegian, Color: Yellow, Beverage: Water, Cigar: Dunhill, Pet: Cats},
		{Position: 1, Nationality: Dane, Color: Blue, Beverage: Tea, Cigar: Blends, Pet: Horse},
		{Position: 2, Nationality: Brit, Color: Red, Beverage: Milk, Cigar: PallMall, Pet: Birds},
		{Position: 3, Nationality: German, Color: Green, Beverage: Coffee, Cigar: Prince, Pet: Fish},
		{Position: 4, Nationality: Swede, Color: White, Beverage: Beer, Cigar: BlueMasters, Pet: Dogs},
	}
}

func einsteinFacts() []Fact {
	return lo.FlatMap(einsteinSolution(), func(house House, _ int) []Fact { return house.Facts() })
}

func einsteinAssignment() []bool {
	assignment, err := Encode(NewIndexer(), einsteinFacts())
	if err != nil {
		panic(err)
	}
	return assignment
}

// satisfies evaluates clauses under an assignment indexed by proposition
func satisfies(clauses [][]int64, assignment []bool) bool {
	for _, clause := range clauses {
		if !lo.SomeBy(clause, func(literal int64) bool {
			return assignment[Proposition(literal)] == (literal > 0)
		}) {
			return false
		}
	}
	return true
}
