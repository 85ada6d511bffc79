package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered diagram cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached diagrams",
		Long: `Remove all cached diagrams from the configured backend.

Only hemicycle entries are removed, including diagrams stored by
"hemicycle serve" against the same backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCache(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printInfo("Cache is disabled")
				return nil
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation describes the configured backend: a directory for the file
// cache, the connection string otherwise.
func (c *CLI) cacheLocation() string {
	opts := c.Config.cacheOptions()
	switch opts.Backend {
	case cache.BackendNone:
		return cache.BackendNone
	case cache.BackendRedis:
		return opts.RedisURL
	case cache.BackendMongo:
		db := opts.MongoDatabase
		if db == "" {
			db = cache.DefaultMongoDatabase
		}
		return opts.MongoURI + " (" + db + ")"
	}
	return opts.Dir
}
