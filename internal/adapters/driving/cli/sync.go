package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync [path]",
	Short: "Mirror locale front matter into the database",
	Long: `Walks the memory tree and inserts-or-replaces a database row for every
document whose front matter describes a commercial unit. Structured queries
read these rows, so run sync after editing locale documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc := syncService
	root := ""
	if len(args) > 0 {
		root = args[0]
	}

	if svc == nil {
		wired, cfg, cleanup, err := wireSyncService()
		if err != nil {
			return fmt.Errorf("configure sync: %w", err)
		}
		defer cleanup()
		svc = wired
		if root == "" {
			root = cfg.MemoryPath
		}
	}
	if root == "" {
		return fmt.Errorf("no memory path configured")
	}

	n, err := svc.Sync(ctx, root)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Synced %d locales from %s.\n", n, root)
	return nil
}
