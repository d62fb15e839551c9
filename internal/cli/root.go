package cli

import (
	"fmt"

	"github.com/mgpai22/srtedit/internal/config"
	"github.com/mgpai22/srtedit/internal/logging"
	"github.com/spf13/cobra"
)

const skipConfigLoad = "skipConfigLoad"

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtedit",
	Short: "Adjust cue timings in SRT subtitle files",
	Long: `srtedit rewrites the "HH:MM:SS,mmm --> HH:MM:SS,mmm" timing lines of a
subtitle file and leaves every other line untouched.

It can shift whole cues, push cue ends later or earlier, or stretch cues
that are shown for less than a minimum duration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigLoad] == "true" {
			logger = logging.NewLogger(verbose)
			return nil
		}

		loaded, path, exists, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return err
		}
		logger.Debugw("Loaded configuration", "path", path, "exists", exists)
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Config file path (default ~/.config/srtedit/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
