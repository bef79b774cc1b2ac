package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxPreallocatedClauses = 1 << 16

// SATSolution holds the signed literals of a model, one per variable: positive literals are true and negative literals are false
type SATSolution []int64

// SAT is a CNF formula over the variables 1..Variables. Each clause is a disjunction of signed literals
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// ToDIMACS writes the instance in DIMACS-CNF format. Clauses keep their order, so the output is reproducible
func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// ParseDIMACS reads a DIMACS-CNF instance. Comment lines are skipped and clauses may span several lines
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var (
		instance SAT
		header   bool
		declared uint64
		clause   []int64
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and blank lines
		if len(line) == 0 || line[0] == 'c' || line[0] == '%' {
			continue
		}
		// Problem line
		if line[0] == 'p' {
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			clauses, err := strconv.ParseUint(parts[3], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid clause count: %w", err)
			}
			instance.Variables, declared, header = variables, clauses, true
			// Initial capacity stays bounded whatever count the header declares
			instance.Clauses = make([][]int64, 0, min(clauses, maxPreallocatedClauses))
			continue
		}
		if !header {
			return SAT{}, fmt.Errorf("clause found before problem line: %s", line)
		}

		// Clause line
		for _, literalStr := range strings.Fields(line) {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", literalStr, err)
			}
			if literal == 0 {
				instance.Clauses = append(instance.Clauses, clause)
				clause = nil
				continue
			}
			if abs(literal) > instance.Variables {
				return SAT{}, fmt.Errorf("literal %d exceeds the declared %d variables", literal, instance.Variables)
			}
			clause = append(clause, literal)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading DIMACS: %w", err)
	}
	if !header {
		return SAT{}, fmt.Errorf("missing problem line")
	}
	if len(clause) > 0 {
		return SAT{}, fmt.Errorf("last clause is not terminated by 0")
	}
	if uint64(len(instance.Clauses)) != declared {
		return SAT{}, fmt.Errorf("declared %d clauses but found %d", declared, len(instance.Clauses))
	}

	return instance, nil
}

// Evaluate checks whether the assignment (indexed by variable-1) satisfies every clause
func (s SAT) Evaluate(assignment []bool) (bool, error) {
	if uint64(len(assignment)) != s.Variables {
		return false, fmt.Errorf("assignment has %d values but the instance has %d variables", len(assignment), s.Variables)
	}

	for _, clause := range s.Clauses {
		satisfied := false
		for _, literal := range clause {
			value := assignment[abs(literal)-1]
			if (literal > 0) == value {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false, nil
		}
	}
	return true, nil
}

// Satisfies checks whether the solution is consistent (no duplicates nor contradictions) and satisfies every clause
func (s SAT) Satisfies(solution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range s.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

func abs(literal int64) uint64 {
	if literal < 0 {
		return uint64(-literal)
	}
	return uint64(literal)
}
