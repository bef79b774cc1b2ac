package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Puzzle struct {
	Name  string
	Clues []Clue
}

// RawClue is a clue as written in a puzzle file, with operands of the form "attribute=value"
type RawClue struct {
	Kind   string
	First  string
	Second string
}

type RawPuzzle struct {
	Name  string
	Clues []RawClue
}

// EinsteinPuzzle returns Einstein's puzzle, whose unique solution places the fish with the German
func EinsteinPuzzle() Puzzle {
	return Puzzle{Name: "einstein", Clues: EinsteinClues()}
}

func PuzzleFromYaml(file string) (Puzzle, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Puzzle{}, fmt.Errorf("cannot read puzzle file: %w", err)
	}
	return ParsePuzzle(bytes)
}

// ParsePuzzle reads a YAML document of the form:
//
//	name: einstein
//	clues:
//	  - kind: together
//	    first: nationality=brit
//	    second: color=red
//	  - kind: located
//	    first: beverage=milk
//	    second: house=2
//
// Supported kinds are together, apart, located, immediatelyLeftOf, leftOf and nextTo
func ParsePuzzle(bytes []byte) (Puzzle, error) {
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return Puzzle{}, fmt.Errorf("cannot parse puzzle: %w", err)
	}

	var rawPuzzle RawPuzzle
	if err := mapstructure.Decode(inputYaml, &rawPuzzle); err != nil {
		return Puzzle{}, fmt.Errorf("cannot decode puzzle: %w", err)
	}
	return ProcessRawPuzzle(rawPuzzle)
}

func ProcessRawPuzzle(rawPuzzle RawPuzzle) (Puzzle, error) {
	puzzle := Puzzle{
		Name:  rawPuzzle.Name,
		Clues: make([]Clue, 0, len(rawPuzzle.Clues)),
	}

	for i, rawClue := range rawPuzzle.Clues {
		clue, err := processRawClue(rawClue)
		if err != nil {
			return Puzzle{}, fmt.Errorf("clue %d: %w", i+1, err)
		}
		puzzle.Clues = append(puzzle.Clues, clue)
	}

	return puzzle, nil
}

func processRawClue(rawClue RawClue) (Clue, error) {
	first, err := ParseOperand(rawClue.First)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClue, err)
	}
	second, err := ParseOperand(rawClue.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClue, err)
	}

	switch strings.ToLower(rawClue.Kind) {
	case "together":
		return Together{first, second}, nil
	case "apart":
		return Apart{first, second}, nil
	case "located":
		position, ok := second.(Position)
		if !ok {
			return nil, fmt.Errorf("%w: located clue expects a house position but got %v", ErrInvalidClue, Operand(second))
		}
		return Located{first, position}, nil
	case "immediatelyleftof":
		return ImmediatelyLeftOf{first, second}, nil
	case "leftof":
		return LeftOf{first, second}, nil
	case "nextto":
		return NextTo{first, second}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind \"%v\"", ErrInvalidClue, rawClue.Kind)
}
