// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/image-search/pkg/types"
)

// Format selects how a result page is written by Write.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
}

// Export is the serializable view of a controller snapshot.
type Export struct {
	Query      string        `json:"query" yaml:"query" toml:"query"`
	Page       int           `json:"page" yaml:"page" toml:"page"`
	TotalPages int           `json:"total_pages" yaml:"total_pages" toml:"total_pages"`
	Photos     []types.Photo `json:"photos" yaml:"photos" toml:"photos"`
}

// NewExport converts a snapshot for serialization. Photos is never nil.
func NewExport(s State) Export {
	photos := s.Results
	if photos == nil {
		photos = []types.Photo{}
	}
	return Export{
		Query:      s.Query,
		Page:       s.Page,
		TotalPages: s.TotalPages,
		Photos:     photos,
	}
}

// Write renders s to w in format f.
func Write(w io.Writer, s State, f Format) error {
	switch f {
	case FormatTable, "":
		WriteTable(w, s)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewExport(s))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewExport(s)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(NewExport(s)); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// WriteTable writes a human-readable table of the current page to w.
func WriteTable(w io.Writer, s State) {
	if len(s.Results) == 0 {
		fmt.Fprintf(w, "No photos for %q.\n", s.Query)
		return
	}

	fmt.Fprintf(w, "%-4s  %-14s  %-40s  %s\n", "#", "ID", "Description", "Thumbnail")
	fmt.Fprintf(w, "%-4s  %-14s  %-40s  %s\n", "----", "--------------", "----------------------------------------", "---------")
	for i, p := range s.Results {
		fmt.Fprintf(w, "%-4d  %-14s  %-40s  %s\n",
			(s.Page-1)*PageSize+i+1, truncate(p.ID, 14), truncate(describe(p), 40), p.ThumbnailURL)
	}

	fmt.Fprintf(w, "\nPage %d of %d", s.Page, s.TotalPages)
	switch {
	case s.CanPrev() && s.CanNext():
		fmt.Fprint(w, " (previous and next available)")
	case s.CanNext():
		fmt.Fprint(w, " (next available)")
	case s.CanPrev():
		fmt.Fprint(w, " (previous available)")
	}
	fmt.Fprintln(w)
}

// describe returns the photo's description or a placeholder.
func describe(p types.Photo) string {
	if p.Description == "" {
		return "(untitled)"
	}
	return p.Description
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
