package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleFromYaml(t *testing.T) {
	//** Act
	puzzle, err := PuzzleFromYaml("../../puzzles/einstein.yaml")

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, EinsteinPuzzle(), puzzle)
}

func TestParsePuzzle(t *testing.T) {
	//** Arrange
	input := []byte(`
name: small
clues:
  - kind: Apart
    first: nationality=brit
    second: pet=fish
  - kind: leftOf
    first: color=red
    second: color=blue
`)

	//** Act
	puzzle, err := ParsePuzzle(input)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "small", puzzle.Name)
	assert.Equal(t, []Clue{Apart{Brit, Fish}, LeftOf{Red, Blue}}, puzzle.Clues)
}

func TestParsePuzzleErrors(t *testing.T) {
	scenarios := map[string]string{
		"unknown kind":      "clues:\n  - kind: above\n    first: nationality=brit\n    second: color=red\n",
		"unknown value":     "clues:\n  - kind: together\n    first: nationality=martian\n    second: color=red\n",
		"located elsewhere": "clues:\n  - kind: located\n    first: beverage=milk\n    second: color=red\n",
		"malformed operand": "clues:\n  - kind: together\n    first: brit\n    second: color=red\n",
		"position overrun":  "clues:\n  - kind: located\n    first: beverage=milk\n    second: house=5\n",
	}

	for name, input := range scenarios {
		_, err := ParsePuzzle([]byte(input))
		assert.ErrorIs(t, err, ErrInvalidClue, name)
	}

	_, err := ParsePuzzle([]byte("clues: [unterminated"))
	assert.Error(t, err)

	_, err = PuzzleFromYaml("missing.yaml")
	assert.Error(t, err)
}
