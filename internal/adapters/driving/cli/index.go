package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index the memory documents into the vector store",
	Long: `Reads every markdown document under the memory tree, splits it into
chunks, embeds each chunk, and writes the result to the vector store.
Re-running is safe: chunk identifiers are derived from source and position,
so unchanged documents overwrite themselves.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc := indexService
	root := ""
	if len(args) > 0 {
		root = args[0]
	}

	if svc == nil {
		wired, cfg, cleanup, err := wireIndexService(ctx)
		if err != nil {
			return fmt.Errorf("configure indexing: %w", err)
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

	n, err := svc.Index(ctx, root)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %d chunks from %s.\n", n, root)
	return nil
}
