package model

import "github.com/samber/lo"

// clauseWriter builds clauses over the indexer's propositions. The first indexing error is kept and every later call
// becomes a no-op, so generators check it once at the end
type clauseWriter struct {
	indexer Indexer
	clauses [][]int64
	err     error
}

func newClauseWriter(indexer Indexer) *clauseWriter {
	return &clauseWriter{indexer: indexer, clauses: make([][]int64, 0)}
}

// positive returns the literal asserting that both values hold for the same house
func (writer *clauseWriter) positive(first, second Value) int64 {
	return writer.literal(first, second, false)
}

// negative returns the literal denying that both values hold for the same house
func (writer *clauseWriter) negative(first, second Value) int64 {
	return writer.literal(first, second, true)
}

func (writer *clauseWriter) literal(first, second Value, negated bool) int64 {
	if writer.err != nil {
		return 0
	}
	index, err := writer.indexer.Index(first, second)
	if err != nil {
		writer.err = err
		return 0
	}
	return Literal(index, negated)
}

// add appends the disjunction of the literals. A clause is a set, so repeated literals collapse while the order of
// first occurrence is kept
func (writer *clauseWriter) add(literals ...int64) {
	if writer.err != nil {
		return
	}
	writer.clauses = append(writer.clauses, lo.Uniq(literals))
}

func (writer *clauseWriter) result() ([][]int64, error) {
	if writer.err != nil {
		return nil, writer.err
	}
	return writer.clauses, nil
}
