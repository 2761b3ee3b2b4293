package app

import (
	"github.com/spf13/cobra"

	"github.com/tabnote/tabnote/internal/config"
	"github.com/tabnote/tabnote/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&noBridge,
		"no-bridge",
		false,
		"Do not attach the native-messaging bridge on stdin/stdout (API only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file

	cfg      config.Config
	err      error
	devMode  bool
	noBridge bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the Tabnote agent",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if noBridge {
				cfg.Agent.Bridge.Enabled = false
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			daemon := daemon.New(&cfg)
			if err := daemon.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
