package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/server"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var flags drawFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagrams over HTTP",
		Long: `Serve diagrams over HTTP until interrupted.

  GET /healthz
  GET /v1/validate/{spec}
  GET /v1/diagrams/{spec}.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.config().Server.Addr
			}

			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			srv := server.New(runner, loggerFromContext(ctx))
			if n := c.config().Server.MaxCells; n > 0 {
				srv.MaxCells = n
			}
			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
