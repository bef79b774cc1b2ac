package sat

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGophersat(t *testing.T) {
	solver := NewGophersatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestGini(t *testing.T) {
	solver := NewGiniSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestKissat(t *testing.T) {
	configureExternalSolver(t, "kissat", "kissatPath")
	solver := NewKissatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
}

func TestCadical(t *testing.T) {
	configureExternalSolver(t, "cadical", "cadicalPath")
	solver := NewCadicalSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
}

func TestMinisat(t *testing.T) {
	configureExternalSolver(t, "minisat", "minisatPath")
	solver := NewMinisatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
}

func TestExternalSolverNotConfigured(t *testing.T) {
	//** Arrange
	config := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"cadicalPath": "cadical"}`), 0666))
	previous := ConfigPath
	ConfigPath = config
	t.Cleanup(func() { ConfigPath = previous })

	//** Act
	solution, err := NewKissatSolver().Solve(pigeonholeInstance())

	//** Assert
	assert.Nil(t, solution)
	assert.ErrorContains(t, err, "kissatPath")
}

func TestSolversRegistry(t *testing.T) {
	for name, constructor := range Solvers {
		assert.NotNil(t, constructor(), name)
	}
	assert.Contains(t, Solvers, "gophersat")
	assert.Contains(t, Solvers, "gini")
}

func satisfiableExecution(t *testing.T, solver SATSolver) {
	for range 10 {
		//** Arrange
		instance := generateSATInstance(50, 100)

		//** Act
		solution, err := solver.Solve(instance)

		//** Assert
		require.NoError(t, err)
		require.NotNil(t, solution)
		assert.Len(t, solution, int(instance.Variables))
		assert.True(t, instance.Satisfies(solution))
	}
}

func unsatisfiableExecution(t *testing.T, solver SATSolver) {
	//** Act
	solution, err := solver.Solve(pigeonholeInstance())

	//** Assert
	assert.NoError(t, err)
	assert.Nil(t, solution)
}

// configureExternalSolver skips the test when the executable is not installed, otherwise it points ConfigPath to it
func configureExternalSolver(t *testing.T, executable, key string) {
	t.Helper()
	path, err := exec.LookPath(executable)
	if err != nil {
		t.Skipf("%v is not installed", executable)
	}

	config := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"`+key+`": "`+path+`"}`), 0666))
	previous := ConfigPath
	ConfigPath = config
	t.Cleanup(func() { ConfigPath = previous })
}

func TestInProcessSolversOnContradictoryUnits(t *testing.T) {
	//** Arrange
	instance := SAT{Variables: 2, Clauses: [][]int64{{1}, {-1}, {1, 2}}}

	for name, newSolver := range map[string]func() SATSolver{"gophersat": NewGophersatSolver, "gini": NewGiniSolver} {
		//** Act
		solution, err := newSolver().Solve(instance)

		//** Assert
		require.NoError(t, err, name)
		assert.Nil(t, solution, name)
	}
}
