package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionAxiomsCount(t *testing.T) {
	indexer := NewIndexer()

	for _, pair := range attributePairs {
		clauses, err := ExclusionAxioms(indexer, Values(pair[0]), Values(pair[1]))
		require.NoError(t, err)
		assert.Len(t, clauses, 110, "%v-%v", pair[0], pair[1])
	}
}

func TestExclusionAxiomsOfUnevenDomains(t *testing.T) {
	//** Act
	clauses, err := ExclusionAxioms(NewIndexer(), []Value{Brit}, Values(HouseAttribute))

	//** Assert
	require.NoError(t, err)
	// Ten "at most one" clauses plus one "at least one" clause for the Brit, one unit clause per position
	assert.Len(t, clauses, 16)
	assert.Len(t, clauses[10], 5)
	for _, clause := range clauses[11:] {
		assert.Len(t, clause, 1)
	}
}

func TestExclusionAxiomsAcceptOnlyBijections(t *testing.T) {
	//** Arrange
	indexer := NewIndexer()
	nationalities := Values(NationalityAttribute)[:3]
	colors := Values(ColorAttribute)[:3]
	clauses, err := ExclusionAxioms(indexer, nationalities, colors)
	require.NoError(t, err)

	indices := make([]uint64, 0, 9)
	for _, nationality := range nationalities {
		for _, color := range colors {
			index, err := indexer.Index(nationality, color)
			require.NoError(t, err)
			indices = append(indices, index)
		}
	}

	//** Act
	satisfying := 0
	for mask := range 1 << len(indices) {
		assignment := make([]bool, Propositions)
		for bit, index := range indices {
			assignment[index] = mask&(1<<bit) != 0
		}
		if !satisfies(clauses, assignment) {
			continue
		}
		satisfying++

		// Every row and every column holds exactly one true proposition
		for i := range 3 {
			rowCount, columnCount := 0, 0
			for j := range 3 {
				if assignment[indices[3*i+j]] {
					rowCount++
				}
				if assignment[indices[3*j+i]] {
					columnCount++
				}
			}
			assert.Equal(t, 1, rowCount)
			assert.Equal(t, 1, columnCount)
		}
	}

	//** Assert
	assert.Equal(t, 6, satisfying) // 3! permutation matrices
}

func TestConsistencyAxiomsCount(t *testing.T) {
	indexer := NewIndexer()
	hub := Values(HouseAttribute)

	for _, pair := range consistencyPairs {
		clauses, err := ConsistencyAxioms(indexer, Values(pair[0]), Values(pair[1]), hub)
		require.NoError(t, err)
		require.Len(t, clauses, 125)
		for _, clause := range clauses {
			assert.Len(t, clause, 3)
			assert.Less(t, clause[0], int64(0))
			assert.Less(t, clause[1], int64(0))
			assert.Greater(t, clause[2], int64(0))
		}
	}
}

func TestConsistencyAxiomsRejectDetachedRelations(t *testing.T) {
	//** Arrange
	indexer := NewIndexer()
	nationalities, colors, hub := Values(NationalityAttribute), Values(ColorAttribute), Values(HouseAttribute)

	// Swap the colors of the Brit and the German in the nationality-color block only
	assignment := einsteinAssignment()
	for _, fact := range []Fact{{Brit, Red}, {German, Green}} {
		index, err := indexer.Index(fact.First, fact.Second)
		require.NoError(t, err)
		assignment[index] = false
	}
	for _, fact := range []Fact{{Brit, Green}, {German, Red}} {
		index, err := indexer.Index(fact.First, fact.Second)
		require.NoError(t, err)
		assignment[index] = true
	}

	exclusion, err := ExclusionAxioms(indexer, nationalities, colors)
	require.NoError(t, err)
	consistency, err := ConsistencyAxioms(indexer, nationalities, colors, hub)
	require.NoError(t, err)

	//** Act
	canonical := satisfies(consistency, einsteinAssignment())
	exclusive := satisfies(exclusion, assignment)
	consistent := satisfies(consistency, assignment)

	//** Assert
	assert.True(t, canonical)
	assert.True(t, exclusive)
	assert.False(t, consistent)
}

func TestAxiomsPropagateIndexingErrors(t *testing.T) {
	indexer := NewIndexer()

	_, err := ExclusionAxioms(indexer, Values(ColorAttribute), Values(ColorAttribute))
	assert.ErrorIs(t, err, ErrInvalidSelector)

	_, err = ConsistencyAxioms(indexer, []Value{Brit}, []Value{Color(9)}, Values(HouseAttribute))
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestExclusionAxiomsRowIsExactlyOne(t *testing.T) {
	//** Arrange
	indexer := NewIndexer()
	colors := Values(ColorAttribute)
	clauses, err := ExclusionAxioms(indexer, Values(NationalityAttribute), colors)
	require.NoError(t, err)
	britClauses := clauses[:11] // The Brit's row: ten "at most one" clauses and one "at least one" clause

	indices := make([]uint64, 0, len(colors))
	for _, color := range colors {
		index, err := indexer.Index(Brit, color)
		require.NoError(t, err)
		indices = append(indices, index)
	}

	//** Act
	satisfying := make([]int, 0)
	for mask := range 1 << len(indices) {
		assignment := make([]bool, Propositions)
		for bit, index := range indices {
			assignment[index] = mask&(1<<bit) != 0
		}
		if satisfies(britClauses, assignment) {
			satisfying = append(satisfying, mask)
		}
	}

	//** Assert
	// Only the five one-hot sub-assignments survive
	assert.Equal(t, []int{1, 2, 4, 8, 16}, satisfying)
}
