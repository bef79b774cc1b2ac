package main

import (
	"errors"
	"os"
)

// Non-zero exit codes follow the SAT competition convention where it applies
const (
	exitFailure       = 1
	exitVerification  = 15
	exitUnsatisfiable = 20
)

var (
	errUnsatisfiable = errors.New("puzzle is unsatisfiable")
	errVerification  = errors.New("solution does not satisfy the puzzle")
)

func main() {
	err := newRootCommand().Execute()
	switch {
	case err == nil:
		return
	case errors.Is(err, errUnsatisfiable):
		os.Exit(exitUnsatisfiable)
	case errors.Is(err, errVerification):
		os.Exit(exitVerification)
	default:
		os.Exit(exitFailure)
	}
}
