package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the centre",
	Long: `Answers a natural-language question. Questions that name a specific
locale and attribute are resolved directly from the database; everything
else is answered from retrieved context by the language model.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	svc := queryService
	if svc == nil {
		wired, cleanup, err := wireQueryService(ctx)
		if err != nil {
			return fmt.Errorf("configure query: %w", err)
		}
		defer cleanup()
		svc = wired
	}

	answer, err := svc.Ask(ctx, question)
	if err != nil {
		return err
	}

	cmd.Println(answer)
	return nil
}
