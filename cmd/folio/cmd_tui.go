package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/tui"
)

const tuiLogFile = "folio-tui.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _, err := openContent()
		if err != nil {
			return err
		}

		// the terminal belongs to the UI; debug logs go to a file
		uiLogger := zap.NewNop()
		if verbose {
			zc := zap.NewDevelopmentConfig()
			zc.OutputPaths = []string{tuiLogFile}
			zc.ErrorOutputPaths = []string{tuiLogFile}
			if uiLogger, err = zc.Build(); err != nil {
				return fmt.Errorf("failed to open %s: %w", tuiLogFile, err)
			}
			defer uiLogger.Sync()
		}

		m := tui.New(source.Current(), tui.Options{
			TypeInterval: cfg.Hero.TypeInterval,
			ScrollSpy:    cfg.ScrollSpy,
			Placeholder:  cfg.Media.Placeholder,
			ImageDir:     cfg.Media.ImageDir,
			Logger:       uiLogger,
		})
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}
