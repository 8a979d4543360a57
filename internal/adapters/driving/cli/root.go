// Package cli implements the command-line interface for centrorag.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/portalcentro/centrorag/internal/core/ports/driven"
	"github.com/portalcentro/centrorag/internal/core/ports/driving"
	"github.com/portalcentro/centrorag/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath string
	verbose bool
)

// Services used by the commands. They are wired lazily from the
// configuration on first use; tests inject fakes directly.
var (
	indexService driving.IndexService
	queryService driving.QueryService
	syncService  driving.SyncService
	localeStore  driven.LocaleStore
)

var rootCmd = &cobra.Command{
	Use:   "centrorag",
	Short: "Knowledge assistant for the PortalCentro Mulchén commercial centre",
	Long: `centrorag indexes the centre's markdown memory into a vector store and
answers questions about it: structured locale lookups go straight to the
database, everything else is answered from retrieved context.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.centrorag/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
