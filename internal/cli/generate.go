package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/search/grid"
)

// generateFlags are shared by generate and by solve without a board file.
type generateFlags struct {
	Rows     int
	Cols     int
	Clusters int
	Steps    int
	Density  float64
	Seed     uint64
}

func (g *generateFlags) register(cmd *cobra.Command) {
	defaults := grid.DefaultGenerateOptions()
	cmd.Flags().IntVar(&g.Rows, "rows", grid.DefaultRows, "board rows")
	cmd.Flags().IntVar(&g.Cols, "cols", grid.DefaultCols, "board columns")
	cmd.Flags().IntVar(&g.Clusters, "clusters", defaults.Clusters, "number of obstacle clusters")
	cmd.Flags().IntVar(&g.Steps, "steps", defaults.Steps, "random-walk length per cluster")
	cmd.Flags().Float64Var(&g.Density, "density", defaults.Density, "chance a walked cell becomes an obstacle")
	cmd.Flags().Uint64Var(&g.Seed, "seed", 1, "random seed")
}

func (g *generateFlags) board() (*grid.Board, error) {
	return grid.Generate(g.Rows, g.Cols, grid.GenerateOptions{
		Clusters: g.Clusters,
		Steps:    g.Steps,
		Density:  g.Density,
		Seed:     g.Seed,
	})
}

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output string
	Name   string
	Board  generateFlags
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random board as YAML",
		Long: `Generate a board with clustered random obstacles and random start and
goal cells. The same seed always yields the same board.

Example:
  pathfinder generate --rows 20 --cols 40 --seed 7 -o maze.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := opts.Board.board()
			if err != nil {
				return err
			}
			if opts.Output == "" || opts.Output == "-" {
				return board.Encode(cmd.OutOrStdout(), opts.Name)
			}
			return board.Save(opts.Output, opts.Name)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "board name stored in the file")
	opts.Board.register(cmd)

	return cmd
}
