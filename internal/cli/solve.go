package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/grid"
)

// ErrNoSolution is returned when no requested strategy reached the goal.
var ErrNoSolution = errors.New("no path between start and goal")

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Strategy  string
	Heuristic string
	All       bool
	Animate   int
	Format    string
	Generate  generateFlags
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [board.yaml]",
		Short: "Solve a board and print the explored cells and the path",
		Long: `Solve a board file, or a generated board when no file is given.

Legend: S start, G goal, # obstacle, o explored, * path.

Example:
  pathfinder solve maze.yaml --strategy astar --heuristic euclidean
  pathfinder solve --rows 20 --cols 40 --seed 7 --all
  pathfinder solve maze.yaml --animate 25`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "bfs", "search strategy (bfs|dfs|ucs|greedy|astar)")
	cmd.Flags().StringVar(&opts.Heuristic, "heuristic", "manhattan", "cost function for greedy and astar (manhattan|euclidean|zero)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "run every strategy and compare them")
	cmd.Flags().IntVar(&opts.Animate, "animate", 0, "print the replay frames, revealing N cells per frame")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	opts.Generate.register(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, args []string) error {
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", opts.Format)
	}
	heuristic, err := grid.ParseHeuristic(opts.Heuristic)
	if err != nil {
		return err
	}

	var board *grid.Board
	if len(args) == 1 {
		board, _, err = grid.Load(args[0])
	} else {
		board, err = opts.Generate.board()
	}
	if err != nil {
		return err
	}

	searchOptions := []search.Option{search.WithMaxExpansions(opts.Config.MaxExpansions)}
	out := cmd.OutOrStdout()

	if opts.All {
		solutions, err := board.Compare(cmd.Context(), search.Strategies, heuristic, searchOptions...)
		if err != nil {
			return err
		}
		if err := printComparison(out, opts.Format, board, solutions); err != nil {
			return err
		}
		for _, solution := range solutions {
			if solution.Found {
				return nil
			}
		}
		return &ExitError{Code: ExitNoSolution, Err: ErrNoSolution}
	}

	strategy, err := search.ParseStrategy(opts.Strategy)
	if err != nil {
		return err
	}
	solution, err := board.Solve(cmd.Context(), strategy, heuristic, searchOptions...)
	if err != nil {
		return err
	}
	log.Debug().
		Str("strategy", strategy.String()).
		Int("expanded", solution.Stats.Expanded).
		Dur("took", solution.Stats.Duration).
		Msg("solved")

	switch {
	case opts.Format == "json":
		if err := writeJSON(out, solutionView(solution)); err != nil {
			return err
		}
	case opts.Animate > 0:
		printAnimation(out, board, solution, opts.Animate)
	default:
		fmt.Fprint(out, board.Render(solution))
		fmt.Fprintln(out, summary(solution))
	}

	if !solution.Found {
		return &ExitError{Code: ExitNoSolution, Err: ErrNoSolution}
	}
	return nil
}

type solutionJSON struct {
	Strategy   search.Strategy `json:"strategy"`
	Found      bool            `json:"found"`
	Explored   []grid.Point    `json:"explored"`
	Path       []grid.Point    `json:"path"`
	Expanded   int             `json:"expanded"`
	Discovered int             `json:"discovered"`
	PathCost   float64         `json:"pathCost"`
}

func solutionView(solution grid.Solution) solutionJSON {
	view := solutionJSON{
		Strategy:   solution.Strategy,
		Found:      solution.Found,
		Explored:   solution.Explored,
		Path:       solution.Path,
		Expanded:   solution.Stats.Expanded,
		Discovered: solution.Stats.Discovered,
		PathCost:   solution.Stats.PathCost,
	}
	if view.Explored == nil {
		view.Explored = []grid.Point{}
	}
	if view.Path == nil {
		view.Path = []grid.Point{}
	}
	return view
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func summary(solution grid.Solution) string {
	if !solution.Found {
		return fmt.Sprintf("%s: no path (%d cells explored)", solution.Strategy, len(solution.Explored))
	}
	return fmt.Sprintf("%s: path of %d steps, %d cells explored, %d expansions",
		solution.Strategy, len(solution.Path)+1, len(solution.Explored), solution.Stats.Expanded)
}

func printComparison(w io.Writer, format string, board *grid.Board, solutions []grid.Solution) error {
	if format == "json" {
		views := make([]solutionJSON, 0, len(solutions))
		for _, solution := range solutions {
			views = append(views, solutionView(solution))
		}
		return writeJSON(w, views)
	}

	fmt.Fprintln(w, strings.Join(board.Layout(), "\n"))
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tSTEPS\tEXPLORED\tEXPANDED")
	for _, solution := range solutions {
		steps := "-"
		if solution.Found {
			steps = fmt.Sprint(len(solution.Path) + 1)
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%d\t%d\n",
			solution.Strategy, solution.Found, steps, len(solution.Explored), solution.Stats.Expanded)
	}
	return tw.Flush()
}

func printAnimation(w io.Writer, board *grid.Board, solution grid.Solution, speed int) {
	canvas := board.Clone()
	animation := canvas.Animate(solution, speed)
	for {
		frame, more := animation.Tick()
		if frame.Phase == search.PhaseDone {
			break
		}
		fmt.Fprintf(w, "frame %d (%s)\n%s\n\n", frame.StepIndex, frame.Phase, strings.Join(canvas.Lines(), "\n"))
		if !more {
			break
		}
	}
	fmt.Fprintln(w, summary(solution))
}
