package sat

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// minisatSolver runs minisat, which reads the instance from a file and writes its model into another one
type minisatSolver struct{}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(sat SAT) (SATSolution, error) {
	minisatPath, err := getExecutablePath("minisatPath")
	if err != nil {
		return nil, err
	}

	directory, err := os.MkdirTemp("", "minisat-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create minisat working directory: %w", err)
	}
	defer os.RemoveAll(directory)

	inputFile, outputFile := directory+"/input.cnf", directory+"/output.txt"
	if err := os.WriteFile(inputFile, []byte(sat.ToDIMACS()), 0666); err != nil {
		return nil, fmt.Errorf("cannot write minisat input: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(minisatPath, "-verb=0", inputFile, outputFile)
	cmd.Stderr = &stderr

	err = cmd.Run()
	if cmd.ProcessState == nil {
		return nil, fmt.Errorf("cannot start minisat: %w", err)
	}
	switch cmd.ProcessState.ExitCode() {
	case 10:
	case 20:
		return nil, nil
	default:
		return nil, fmt.Errorf("an error occurred during minisat execution: %v: %v", err, stderr.String())
	}

	output, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read minisat output: %w", err)
	}
	return ParseSolution(string(output))
}
