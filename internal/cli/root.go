// Package cli implements the pathfinder command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/search/internal/config"
	"github.com/pdrpinto/search/internal/logging"
)

// Exit codes for CLI commands.
const (
	ExitSuccess    = 0
	ExitFailure    = 1 // bad input, I/O or search errors
	ExitNoSolution = 2 // the goal is unreachable
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel  string
	LogFormat string
	// Config is filled in by the root PersistentPreRunE.
	Config config.Config
	// LookupEnv is swapped in tests.
	LookupEnv func(string) (string, bool)
}

// NewRootCommand creates the root command for the pathfinder CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{LookupEnv: os.LookupEnv})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathfinder",
		Short: "Grid pathfinding demonstrator",
		Long: `Paint obstacles on a grid, place a start and a goal, and watch a search
strategy (bfs, dfs, ucs, greedy, astar) discover a path between them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (console|json)")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// load reads the environment, applies flags on top and installs the global logger.
func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.FromEnv(o.LookupEnv)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	o.Config = cfg
	return nil
}
