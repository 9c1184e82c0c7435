package app

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cartismo/default-theme/internal/theme"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(defaultsCmd)
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the theme manifest and its default settings as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Manifest theme.Manifest `json:"manifest"`
			Settings theme.Settings `json:"settings"`
		}{
			Manifest: theme.DefaultManifest(),
			Settings: theme.Defaults(),
		})
	},
}
