package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve seat diagrams over HTTP",
		Long: `Serve seat diagrams over HTTP.

Routes:
  GET  /health
  GET  /v1/diagram.{svg,json,dot,png,pdf}?groups=...&angle=...&radius_ratio=...
  POST /v1/diagrams        store a diagram, returns its id
  GET  /v1/diagrams/{id}   fetch a stored diagram

Layout and render defaults come from the config file. Stored diagrams need a
cache backend; with --no-cache POST /v1/diagrams is disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			defaults, err := c.Config.pipelineOptions()
			if err != nil {
				return err
			}

			var store cache.Cache
			if !noCache {
				if store, err = c.openCache(ctx, false); err != nil {
					return err
				}
				defer store.Close()
			}

			srv := server.New(server.Config{
				Cache:       store,
				Logger:      c.Logger,
				Defaults:    defaults,
				MaxSeats:    c.Config.Server.MaxSeats,
				DiagramTTL:  c.Config.Server.DiagramTTL.Duration,
				ArtifactTTL: c.Config.Cache.TTL.Duration,
			})
			printInfo("Serving on http://%s", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching and stored diagrams")

	return cmd
}
