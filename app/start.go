package app

import (
	"github.com/spf13/cobra"

	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/daemon"
	"github.com/cartismo/default-theme/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")
	startCmd.Flags().BoolVar(
		&storefront,
		"storefront",
		false,
		"Register the storefront homepage route regardless of the config file",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	cfg        config.Config
	devMode    bool
	storefront bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the default-theme web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if storefront {
				cfg.Theme.StorefrontEnabled = true
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
