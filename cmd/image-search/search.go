// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/image-search/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search Unsplash for photos",
	Long: `Search runs one query against Unsplash and prints a page of results.
Terms are joined with spaces. --preset searches one of the configured presets
instead. --page walks forward page by page, so it stops at the last page the
API reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, _ := cmd.Flags().GetString("preset")
		page, _ := cmd.Flags().GetInt("page")
		formatName, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")

		format, err := search.ParseFormat(formatName)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := log.New(io.Discard, "", 0)
		if verbose {
			logger = log.New(os.Stderr, "image-search: ", log.LstdFlags)
		}
		ctrl := newController(cfg, logger)

		return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), ctrl, searchOptions{
			Terms:  strings.Join(args, " "),
			Preset: preset,
			Page:   page,
			Format: format,
		})
	},
}

func init() {
	searchCmd.Flags().String("preset", "", "search a configured preset instead of terms")
	searchCmd.Flags().Int("page", 1, "result page to print (1-based)")
	searchCmd.Flags().String("format", string(search.FormatTable), "output format: table, json, yaml or toml")
	searchCmd.Flags().BoolP("verbose", "v", false, "log failed requests to stderr")

	rootCmd.AddCommand(searchCmd)
}

// searchOptions describes one non-interactive search.
type searchOptions struct {
	Terms  string
	Preset string
	Page   int
	Format search.Format
}

// runSearch drives ctrl the way the interactive screen does: submit (or pick
// a preset), then step forward with the Next control until opts.Page is
// reached. A failed fetch prints the user-facing failure message to stderr.
func runSearch(ctx context.Context, stdout, stderr io.Writer, ctrl *search.Controller, opts searchOptions) error {
	if opts.Page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", opts.Page)
	}

	var (
		req search.Request
		ok  bool
	)
	switch {
	case opts.Preset != "" && opts.Terms != "":
		return fmt.Errorf("give either search terms or --preset, not both")
	case opts.Preset != "":
		req, ok = ctrl.SelectPreset(opts.Preset)
		if !ok {
			return fmt.Errorf("unknown preset %q (available: %s)", opts.Preset, strings.Join(ctrl.Presets(), ", "))
		}
	default:
		req, ok = ctrl.SubmitSearch(opts.Terms)
		if !ok {
			return fmt.Errorf("no search terms given")
		}
	}

	for {
		if res := ctrl.Run(ctx, req); res.Err != nil {
			fmt.Fprintln(stderr, ctrl.State().ErrorMessage)
			return fmt.Errorf("searching %q page %d: %w", req.Query, req.Page, res.Err)
		}
		s := ctrl.State()
		if s.Page >= opts.Page {
			break
		}
		if req, ok = ctrl.GoToPage(1); !ok {
			return fmt.Errorf("page %d out of range: %q has %d page(s)", opts.Page, s.Query, s.TotalPages)
		}
	}

	return search.Write(stdout, ctrl.State(), opts.Format)
}
