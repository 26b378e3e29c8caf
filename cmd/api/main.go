package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srgjo27/hotel_inventory/internal/platform/config"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:           "hotel-inventory",
		Short:         "Hotel calendar inventory and reservation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
