package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/search/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Start the HTTP API used by the web demonstrator.

Endpoints:
  GET  /api/strategies   list strategies and heuristics
  GET  /api/generate     random board (rows, cols, seed, clusters, steps, density)
  POST /api/solve        {"layout": [...], "strategy": "astar", "heuristic": "manhattan"}
  POST /api/compare      {"layout": [...], "strategies": ["bfs", "astar"]}
  GET  /metrics          prometheus metrics

Example:
  pathfinder serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			if opts.Addr != "" {
				cfg.Addr = opts.Addr
			}
			if log.Logger.GetLevel() > zerolog.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			return server.New(cfg, log.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (default from PATHFINDER_ADDR or PORT, else :8080)")

	return cmd
}
