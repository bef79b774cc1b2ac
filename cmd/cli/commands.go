package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/einstein/pkg/model"
	"github.com/limaJavier/einstein/pkg/sat"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type options struct {
	config  string
	verbose bool
	logger  *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "einstein",
		Short:         "Encode zebra puzzles into CNF, solve them and decode the solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			setConfigPath(opts)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.config, "config", "", "Path to the config.json holding the external solvers' executables; defaults to the one next to the executable")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information")

	root.AddCommand(newEncodeCommand(opts), newSolveCommand(opts), newDecodeCommand(opts))
	return root
}

func newEncodeCommand(opts *options) *cobra.Command {
	var puzzleFile, outFile string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the puzzle's CNF in DIMACS format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			puzzle, err := loadPuzzle(puzzleFile)
			if err != nil {
				return report(opts, err)
			}

			satInstance, err := model.NewEncoder().Encode(puzzle)
			if err != nil {
				return report(opts, fmt.Errorf("cannot encode puzzle: %w", err))
			}
			opts.logger.Debug("puzzle encoded", "puzzle", puzzle.Name, "variables", satInstance.Variables, "clauses", len(satInstance.Clauses))

			// Write into the Standard Output unless an output file is given
			if outFile == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), satInstance.ToDIMACS())
				return report(opts, err)
			}
			if err := os.WriteFile(outFile, []byte(satInstance.ToDIMACS()), 0666); err != nil {
				return report(opts, fmt.Errorf("cannot write output file: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&puzzleFile, "puzzle", "", "Path to a YAML puzzle; Einstein's puzzle is used when empty")
	cmd.Flags().StringVar(&outFile, "out", "", "Path to the file where the DIMACS will be written; if empty, it'll be written into the Standard Output")
	return cmd
}

func newSolveCommand(opts *options) *cobra.Command {
	var (
		puzzleFile, solverName string
		asJson                 bool
		count                  int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the puzzle and print the house table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			solverName = strings.ToLower(solverName)
			newSolver, ok := sat.Solvers[solverName]
			if !ok {
				return report(opts, fmt.Errorf("%v is not a valid solver, allowed values are: %v", solverName, strings.Join(solverNames(), ", ")))
			}

			puzzle, err := loadPuzzle(puzzleFile)
			if err != nil {
				return report(opts, err)
			}

			puzzleSolver := model.NewPuzzleSolver(newSolver())
			if count > 0 {
				solutions, err := puzzleSolver.Enumerate(puzzle, count)
				if err != nil {
					return report(opts, fmt.Errorf("an error occurred while enumerating solutions: %w", err))
				}
				opts.logger.Debug("solutions enumerated", "puzzle", puzzle.Name, "solver", solverName, "solutions", len(solutions))
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "solutions: %d (limit %d)\n", len(solutions), count)
				return report(opts, err)
			}

			facts, variables, clauses, err := puzzleSolver.Solve(puzzle)
			opts.logger.Debug("puzzle solved", "puzzle", puzzle.Name, "solver", solverName, "variables", variables, "clauses", clauses)
			if err != nil {
				return report(opts, fmt.Errorf("an error occurred while solving: %w", err))
			} else if facts == nil {
				opts.logger.Info("no solution", "puzzle", puzzle.Name)
				return errUnsatisfiable
			}

			if !puzzleSolver.Verify(facts, puzzle) {
				return report(opts, errVerification)
			}

			houses, err := model.Houses(facts)
			if err != nil {
				return report(opts, err)
			}

			if asJson {
				return report(opts, writeJson(cmd.OutOrStdout(), houses, facts))
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderHouses(houses)+"\n"+model.Render(facts))
			return report(opts, err)
		},
	}
	cmd.Flags().StringVar(&puzzleFile, "puzzle", "", "Path to a YAML puzzle; Einstein's puzzle is used when empty")
	cmd.Flags().StringVar(&solverName, "solver", "gophersat", "SAT-Solver to use. Allowed values are: "+strings.Join(solverNames(), ", "))
	cmd.Flags().BoolVar(&asJson, "json", false, "Print the solution as JSON")
	cmd.Flags().IntVar(&count, "count", 0, "Count the solutions up to the given limit instead of printing one")
	return cmd
}

func newDecodeCommand(opts *options) *cobra.Command {
	var solutionFile, cnfFile string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a solver's output into the propositions it makes true",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bytes, err := os.ReadFile(solutionFile)
			if err != nil {
				return report(opts, fmt.Errorf("cannot read solution file: %w", err))
			}

			solution, err := sat.ParseSolution(string(bytes))
			if err != nil {
				return report(opts, err)
			} else if solution == nil {
				return errUnsatisfiable
			}

			if cnfFile != "" {
				if err := checkSolution(cnfFile, solution); err != nil {
					return report(opts, err)
				}
				opts.logger.Debug("solution satisfies the instance", "cnf", cnfFile)
			}

			assignment, err := model.AssignmentFromSolution(solution, model.Propositions)
			if err != nil {
				return report(opts, err)
			}
			facts, err := model.Decode(model.NewIndexer(), assignment)
			if err != nil {
				return report(opts, err)
			}

			output := model.Render(facts)
			// Solutions of partial encodings do not necessarily fill the grid
			if houses, err := model.Houses(facts); err == nil {
				output = renderHouses(houses) + "\n" + output
			} else {
				opts.logger.Debug("facts do not form a house table", "error", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), output)
			return report(opts, err)
		},
	}
	cmd.Flags().StringVar(&solutionFile, "solution", "", "Path to the solver's output")
	cmd.Flags().StringVar(&cnfFile, "cnf", "", "Path to the DIMACS instance the solution must satisfy")
	_ = cmd.MarkFlagRequired("solution")
	return cmd
}

// checkSolution verifies the solution against the DIMACS instance it was produced for
func checkSolution(cnfFile string, solution sat.SATSolution) error {
	file, err := os.Open(cnfFile)
	if err != nil {
		return fmt.Errorf("cannot read cnf file: %w", err)
	}
	defer file.Close()

	satInstance, err := sat.ParseDIMACS(file)
	if err != nil {
		return fmt.Errorf("cannot parse cnf file: %w", err)
	}
	if !satInstance.Satisfies(solution) {
		return fmt.Errorf("%w: %v", errVerification, cnfFile)
	}
	return nil
}

func loadPuzzle(file string) (model.Puzzle, error) {
	if file == "" {
		return model.EinsteinPuzzle(), nil
	}
	return model.PuzzleFromYaml(file)
}

func solverNames() []string {
	names := lo.Keys(sat.Solvers)
	slices.Sort(names)
	return names
}

// report logs the error once before handing it back to cobra
func report(opts *options, err error) error {
	if err != nil {
		opts.logger.Error("command failed", "error", err)
	}
	return err
}

type houseJson struct {
	Position    uint64 `json:"position"`
	Nationality string `json:"nationality"`
	Color       string `json:"color"`
	Beverage    string `json:"beverage"`
	Cigar       string `json:"cigar"`
	Pet         string `json:"pet"`
}

func writeJson(writer io.Writer, houses []model.House, facts []model.Fact) error {
	output := map[string]any{
		"houses": lo.Map(houses, func(house model.House, _ int) houseJson {
			return houseJson{
				Position:    uint64(house.Position),
				Nationality: house.Nationality.String(),
				Color:       house.Color.String(),
				Beverage:    house.Beverage.String(),
				Cigar:       house.Cigar.String(),
				Pet:         house.Pet.String(),
			}
		}),
		"facts": strings.Split(strings.TrimSuffix(model.Render(facts), "\n"), "\n"),
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	return nil
}

func renderHouses(houses []model.House) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%-6v %-12v %-8v %-9v %-12v %v\n", "house", "nationality", "color", "beverage", "cigar", "pet")
	for _, house := range houses {
		fmt.Fprintf(&builder, "%-6v %-12v %-8v %-9v %-12v %v\n", house.Position, house.Nationality, house.Color, house.Beverage, house.Cigar, house.Pet)
	}
	return builder.String()
}

// setConfigPath points the external solvers at the given config.json, or at the one next to the executable when it exists
func setConfigPath(opts *options) {
	if opts.config != "" {
		sat.ConfigPath = opts.config
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		opts.logger.Debug("cannot determine executable path", "error", err)
		return
	}
	configPath := path.Join(path.Dir(execPath), "config.json")
	if _, err := os.Stat(configPath); err != nil {
		opts.logger.Debug("config.json was not found next to the executable", "path", configPath)
		return
	}
	sat.ConfigPath = configPath
}
