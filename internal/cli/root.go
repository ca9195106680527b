package cli

import (
	"fmt"

	"github.com/mgpai22/subrip/internal/config"
	"github.com/mgpai22/subrip/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subrip",
	Short: "SubRip subtitle parser",
	Long: `Subrip reads SubRip (.srt) subtitle files into timed cues.

Timestamps are reported in microseconds relative to an optional
start offset, so several files can be placed on one timeline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Verbose: verbose,
			File:    cfg.Logging.File,
		})
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to a YAML config file")
}
