package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseWriterCollapsesRepeatedLiterals(t *testing.T) {
	//** Arrange
	writer := newClauseWriter(NewIndexer())
	britRed := writer.positive(Brit, Red)
	notSwedeRed := writer.negative(Red, Swede)

	//** Act
	writer.add(notSwedeRed, britRed, notSwedeRed, writer.positive(Red, Brit))
	writer.add(britRed)
	clauses, err := writer.result()

	//** Assert
	require.NoError(t, err)
	// First occurrences keep their order
	assert.Equal(t, [][]int64{{-6, 1}, {1}}, clauses)
}

func TestClauseWriterKeepsFirstError(t *testing.T) {
	//** Arrange
	writer := newClauseWriter(NewIndexer())

	//** Act
	writer.add(writer.positive(Brit, Red))
	writer.add(writer.positive(Red, Green), writer.positive(Brit, Position(9)))
	writer.add(writer.positive(Brit, Position(9)))
	clauses, err := writer.result()

	//** Assert
	assert.Nil(t, clauses)
	assert.ErrorIs(t, err, ErrInvalidSelector)
	assert.ErrorContains(t, err, "same attribute")
}
