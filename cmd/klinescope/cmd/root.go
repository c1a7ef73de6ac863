// Package cmd holds the klinescope commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"KlineScope/internal/config"
	"KlineScope/internal/logger"
)

const version = "0.3.0"

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "klinescope",
	Short:         "K-line and time-sharing chart data with MA, MACD and KDJ",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(computeCmd)
}

func initConfig() error {
	path := cfgFile
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}

	var err error
	if cfg, err = config.Load(path); err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	_, err = logger.Init(logger.Config{
		Level:          cfg.Log.Level,
		Format:         cfg.Log.Format,
		File:           cfg.Log.File,
		MaxSizeMB:      cfg.Log.MaxSizeMB,
		MaxAgeDays:     cfg.Log.MaxAgeDays,
		ServiceName:    "klinescope",
		ServiceVersion: version,
	})
	return err
}
