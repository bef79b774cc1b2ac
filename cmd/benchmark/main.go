package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/einstein/pkg/model"
	"github.com/limaJavier/einstein/pkg/sat"
	"github.com/samber/lo"
)

const (
	defaultExecutablePath          = "../../bin/einstein"
	defaultPuzzleDirectory         = "../../puzzles/"
	kbPerMB                float32 = 1024 // time reports memory in kbytes
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
}

type PuzzleMetadata struct {
	Name  string
	File  string
	Clues int
}

type BenchmarkResult struct {
	Solver        string
	Puzzle        PuzzleMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	executablePath := flag.String("executable", defaultExecutablePath, "Path to the einstein executable")
	puzzleDirectory := flag.String("puzzles", defaultPuzzleDirectory, "Directory holding the YAML puzzles to benchmark")
	outFile := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	puzzles, err := getPuzzles(*puzzleDirectory)
	if err != nil {
		fatal("cannot collect puzzles", err)
	}
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(puzzles)*len(solvers))

	for _, puzzle := range puzzles {
		for _, solver := range solvers {
			slog.Info("benchmarking", "puzzle", puzzle.Name, "solver", solver)

			duration, maxMemory, cpuPercentage, result, err := measure(*executablePath, solver, puzzle.File)
			if err != nil {
				// External solvers may be missing from the machine
				slog.Warn("skipping run", "puzzle", puzzle.Name, "solver", solver, "error", err)
				continue
			}

			results = append(results, BenchmarkResult{
				Solver:        solver,
				Puzzle:        puzzle,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	if err := toCsv(*outFile, results); err != nil {
		fatal("cannot write results", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func getPuzzles(directory string) ([]PuzzleMetadata, error) {
	files, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	puzzles := make([]PuzzleMetadata, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !slices.Contains([]string{".yaml", ".yml"}, filepath.Ext(file.Name())) {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		puzzle, err := model.PuzzleFromYaml(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot parse puzzle file %v: %w", filename, err)
		}

		puzzles = append(puzzles, PuzzleMetadata{
			Name:  puzzle.Name,
			File:  filename,
			Clues: len(puzzle.Clues),
		})
	}

	return puzzles, nil
}

func getSolvers() []string {
	solvers := lo.Keys(sat.Solvers)
	slices.Sort(solvers)
	return solvers
}

func measure(executablePath, solver, puzzleFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType, err error) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "solve", "--solver", solver, "--puzzle", puzzleFile)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	_ = cmd.Run()
	if cmd.ProcessState == nil {
		return 0, 0, 0, 0, fmt.Errorf("cannot run %v", executablePath)
	}
	switch cmd.ProcessState.ExitCode() {
	case 0:
		result = solved
	case 20:
		result = unsatisfiable
	default:
		return 0, 0, 0, 0, fmt.Errorf("exit code %d: %v", cmd.ProcessState.ExitCode(), stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) (string, error) {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			return "", fmt.Errorf("substring \"%v\" could not be found", substr)
		}
		return line, nil
	}

	durationLine, err := getLine("wall clock")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	memoryLine, err := getLine("maximum resident set size")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cpuLine, err := getLine("percent of cpu")
	if err != nil {
		return 0, 0, 0, 0, err
	}

	duration, err = parseDurationLine(durationLine)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	maxMemory, err = parseMemoryLine(memoryLine)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cpuPercentage, err = parseCpuPercentageLine(cpuLine)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return duration, maxMemory, cpuPercentage, result, nil
}

func toCsv(outFile string, results []BenchmarkResult) error {
	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Puzzle", "File", "Clues", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			result.Puzzle.Name,
			result.Puzzle.File,
			fmt.Sprintf("%d", result.Puzzle.Clues),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return nil
}

func parseDurationLine(line string) (int64, error) {
	_, durationStr, ok := strings.Cut(line, "(h:mm:ss or m:ss):")
	if !ok {
		return 0, fmt.Errorf("unexpected duration line: %v", line)
	}
	return parseDuration(strings.TrimSpace(durationStr))
}

func parseDuration(durationStr string) (int64, error) {
	parts := strings.Split(durationStr, ":")
	seconds, hundredthOfSeconds, ok := strings.Cut(parts[len(parts)-1], ".")
	if !ok || len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("unexpected duration format: %v", durationStr)
	}

	// h:mm:ss.hh or m:ss.hh
	values := append(slices.Clone(parts[:len(parts)-1]), seconds, hundredthOfSeconds)
	numbers := make([]int64, 0, len(values))
	for _, value := range values {
		number, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected duration format: %v", durationStr)
		}
		numbers = append(numbers, number)
	}
	if len(numbers) == 3 {
		numbers = append([]int64{0}, numbers...)
	}

	hours, minutes, secs, hundredths := numbers[0], numbers[1], numbers[2], numbers[3]
	return (hours*3600+minutes*60+secs)*1000 + hundredths*10, nil
}

func parseMemoryLine(line string) (float32, error) {
	_, memoryStr, _ := strings.Cut(line, ":")
	memory, err := strconv.ParseFloat(strings.TrimSpace(memoryStr), 32)
	if err != nil {
		return 0, fmt.Errorf("unexpected memory line: %v", line)
	}
	return float32(memory) / kbPerMB, nil
}

func parseCpuPercentageLine(line string) (int64, error) {
	_, percentageStr, _ := strings.Cut(line, ":")
	percentage, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimSpace(percentageStr), "%"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected cpu line: %v", line)
	}
	return percentage, nil
}
