package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

var (
	localesNumero int
	localesEstado string
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the commercial units in the database",
	RunE:  runLocales,
}

func init() {
	localesCmd.Flags().IntVar(&localesNumero, "numero", 0, "filter by unit number")
	localesCmd.Flags().StringVar(&localesEstado, "estado", "", "filter by status (e.g. Disponible, Arrendado)")
	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	store := localeStore
	if store == nil {
		wired, cleanup, err := wireLocaleStore()
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer cleanup()
		store = wired
	}

	filter := domain.LocaleFilter{}
	if localesNumero > 0 {
		filter.Numero = &localesNumero
	}
	if localesEstado != "" {
		filter.Estado = &localesEstado
	}

	locales, err := store.Lookup(ctx, filter)
	if err != nil {
		return fmt.Errorf("list locales: %w", err)
	}

	if len(locales) == 0 {
		cmd.Println("No locales found.")
		return nil
	}

	for _, l := range locales {
		cmd.Printf("  [%d] %s\n", l.Numero, l.NombreLocal)
		cmd.Printf("      Piso %s, %d m², %s UF, %s\n",
			l.Piso, l.MetrosCuadrados,
			strconv.FormatFloat(l.MontoArriendoUF, 'f', -1, 64), l.Estado)
		if l.Arrendatario != "" {
			cmd.Printf("      Arrendatario: %s\n", l.Arrendatario)
		}
	}
	cmd.Printf("%d locales.\n", len(locales))
	return nil
}
