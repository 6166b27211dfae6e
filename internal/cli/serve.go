package cli

import (
	"github.com/spf13/cobra"

	"github.com/robtaylor/excalidraw-diagrams/internal/api"
)

// serveCommand creates the serve command, which runs the diagram builder
// as an HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	addr := defaultServeAddr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram builder as an HTTP API",
		Long: `Run the diagram builder as an HTTP API.

Endpoints:
  GET  /healthz       liveness probe
  POST /v1/diagrams   build a document from a node/edge request`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := api.NewServer(addr, c.Logger)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")

	return cmd
}
