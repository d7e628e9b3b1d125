// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset search terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		writePresets(cmd.OutOrStdout(), newController(cfg, nil).Presets())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

// writePresets lists presets with the keys that select them in browse.
func writePresets(w io.Writer, presets []string) {
	for i, p := range presets {
		if i < 9 {
			fmt.Fprintf(w, "F%d  %d  %s\n", i+1, i+1, p)
		} else {
			fmt.Fprintf(w, "       %s\n", p)
		}
	}
}
