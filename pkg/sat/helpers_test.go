package sat

import "math/rand/v2"

func generateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}

// Pigeonhole instance with three pigeons and two holes, which is unsatisfiable
func pigeonholeInstance() SAT {
	// Variable 2*p+h+1 states that pigeon p sits in hole h
	return SAT{
		Variables: 6,
		Clauses: [][]int64{
			{1, 2}, {3, 4}, {5, 6},
			{-1, -3}, {-1, -5}, {-3, -5},
			{-2, -4}, {-2, -6}, {-4, -6},
		},
	}
}
