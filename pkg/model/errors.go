package model

import "errors"

var (
	// ErrInvalidSelector is returned when a proposition is not made of exactly two in-domain values of distinct attributes
	ErrInvalidSelector = errors.New("invalid proposition selector")
	// ErrDecodeRange is returned when an index lies outside the proposition space
	ErrDecodeRange = errors.New("index outside the proposition space")
	// ErrMalformedAssignment is returned when an assignment does not hold exactly one value per proposition
	ErrMalformedAssignment = errors.New("malformed assignment")
	// ErrInvalidClue is returned for clues whose shape cannot be encoded
	ErrInvalidClue = errors.New("invalid clue")
	// ErrIncompleteSolution is returned when decoded facts do not place every value in exactly one house
	ErrIncompleteSolution = errors.New("incomplete solution")
)
