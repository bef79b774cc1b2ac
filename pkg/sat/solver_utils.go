package sat

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to the JSON file mapping external solvers (e.g. "kissatPath") to their executables
var ConfigPath = "../../config.json"

// ParseSolution extracts the model from a solver's output. Both the competition format ("s SATISFIABLE" plus "v" lines)
// and the minisat format ("SAT" followed by a line of literals) are understood. An unsatisfiable output yields nil
func ParseSolution(solverOutput string) (SATSolution, error) {
	lines := lo.Map(strings.Split(solverOutput, "\n"), func(line string, _ int) string { return strings.TrimSpace(line) })

	if lo.ContainsBy(lines, func(line string) bool {
		return line == "UNSAT" || line == "s UNSATISFIABLE"
	}) {
		return nil, nil
	}

	valueLines := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		return strings.TrimPrefix(line, "v"), len(line) > 0 && line[0] == 'v'
	})
	if len(valueLines) == 0 {
		// minisat writes its model on the line right after the "SAT" header
		index := lo.IndexOf(lines, "SAT")
		if index < 0 || index+1 >= len(lines) {
			// Bare model: keep every line made of literals only
			valueLines = lo.Filter(lines, func(line string, _ int) bool {
				return len(line) > 0 && (line[0] == '-' || (line[0] >= '0' && line[0] <= '9'))
			})
		} else {
			valueLines = lines[index+1 : index+2]
		}
	}

	solution := make(SATSolution, 0)
	for _, valueStr := range lo.FlatMap(valueLines, func(line string, _ int) []string { return strings.Fields(line) }) {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}

	if len(solution) == 0 {
		return nil, fmt.Errorf("solver output does not contain a model")
	}
	return solution, nil
}

// modelToSolution transforms a boolean model (indexed by variable-1) into signed literals, where unassigned
// trailing variables are reported as false
func modelToSolution(model []bool, variables uint64) SATSolution {
	solution := make(SATSolution, variables)
	for i := range variables {
		literal := int64(i + 1)
		if i >= uint64(len(model)) || !model[i] {
			literal = -literal
		}
		solution[i] = literal
	}
	return solution
}

func getExecutablePath(solver string) (string, error) {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return "", fmt.Errorf("cannot read config file: %w", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return "", fmt.Errorf("cannot parse config file: %w", err)
	}

	var config map[string]string
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return "", fmt.Errorf("cannot decode config file: %w", err)
	}

	path, ok := config[solver]
	if !ok {
		return "", fmt.Errorf("solver \"%v\" is not present in config", solver)
	}
	return path, nil
}
