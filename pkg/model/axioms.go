package model

// ExclusionAxioms states that the values of first and second are in a one-to-one correspondence: every value of
// first co-occurs with exactly one value of second and vice versa. Domains may have any size
func ExclusionAxioms(indexer Indexer, first, second []Value) ([][]int64, error) {
	writer := newClauseWriter(indexer)
	exactlyOne(writer, first, second)
	exactlyOne(writer, second, first)
	return writer.result()
}

// exactlyOne writes, for every row value, an "at least one" clause over the columns plus an "at most one" clause for
// every pair of columns
func exactlyOne(writer *clauseWriter, rows, columns []Value) {
	for _, row := range rows {
		atLeastOne := make([]int64, 0, len(columns))
		for i := range columns {
			atLeastOne = append(atLeastOne, writer.positive(row, columns[i]))
			for j := i + 1; j < len(columns); j++ {
				// ¬(row, column_i) ∨ ¬(row, column_j)
				writer.add(writer.negative(row, columns[i]), writer.negative(row, columns[j]))
			}
		}
		writer.add(atLeastOne...)
	}
}

// ConsistencyAxioms ties the first-second relation to the hub: whenever a value of first and a value of second sit in
// the same hub value, the direct first-second proposition must hold, i.e. ¬(a, h) ∨ ¬(b, h) ∨ (a, b)
func ConsistencyAxioms(indexer Indexer, first, second, hub []Value) ([][]int64, error) {
	writer := newClauseWriter(indexer)
	for _, h := range hub {
		for _, a := range first {
			for _, b := range second {
				writer.add(writer.negative(a, h), writer.negative(b, h), writer.positive(a, b))
			}
		}
	}
	return writer.result()
}
