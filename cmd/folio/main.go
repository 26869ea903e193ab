// Command folio serves the portfolio over HTTP or renders it in the
// terminal.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A single-page developer portfolio",
	Long: `folio renders a personal portfolio: hero, skills, project gallery and
contact footer. Content comes from data files in the content directory, or
from the built-in table when the directory has none.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "folio.yaml", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, tuiCmd, generateCmd)
}

// openContent loads the configured content directory. A directory without
// data files falls back to the built-in content.
func openContent() (content.Source, *content.Store, error) {
	store, err := content.NewStore(cfg.Content.Dir, logger)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("No content files, using built-in content", zap.String("dir", cfg.Content.Dir))
		return content.Static{Content: content.Default()}, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
