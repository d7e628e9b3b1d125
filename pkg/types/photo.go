// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared between the photo search
// client, the search controller and the command-line surfaces.
package types

// Photo is one search hit as displayed to the user. It is immutable once
// received and owned by the result set that holds it.
type Photo struct {
	// ID is the provider's photo identifier.
	ID string `json:"id" yaml:"id" toml:"id"`

	// ThumbnailURL points at the small rendition of the photo.
	ThumbnailURL string `json:"thumbnail_url" yaml:"thumbnail_url" toml:"thumbnail_url"`

	// Description is the provider's alt description. Empty when the provider
	// returned null.
	Description string `json:"description" yaml:"description" toml:"description"`
}

// PhotoPage is one page of search results as returned by the provider.
// Results keep the order the provider sent them in.
type PhotoPage struct {
	Results    []Photo `json:"results" yaml:"results" toml:"results"`
	Total      int     `json:"total" yaml:"total" toml:"total"`
	TotalPages int     `json:"total_pages" yaml:"total_pages" toml:"total_pages"`
}
