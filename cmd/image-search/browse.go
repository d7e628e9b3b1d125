// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/image-search/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse Unsplash photos interactively",
	Long: `Browse opens the interactive search screen. Type a term and press enter,
or pick one of the presets with F1..F9. Use n/p to page through results.

Diagnostics are written to log_file since the screen is in use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		f, err := tea.LogToFile(cfg.LogFile, "image-search")
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()

		ctrl := newController(cfg, log.Default())
		query, _ := cmd.Flags().GetString("query")
		ctrl.SetQuery(query)

		p := tea.NewProgram(tui.New(cmd.Context(), ctrl), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running terminal UI: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().String("query", "", "search to run when the screen opens")

	rootCmd.AddCommand(browseCmd)
}
