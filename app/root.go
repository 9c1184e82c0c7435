// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // directory holding main.toml

	rootCmd = &cobra.Command{
		Use:   "default-theme",
		Short: "default-theme serves the Cartismo default storefront theme",
		Long: `default-theme serves the Cartismo default storefront theme.
It manages per-store theme settings for administrators and renders
the storefront homepage with the effective settings of each store.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
