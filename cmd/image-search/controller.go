// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log"
	"net/http"

	"github.com/pdiddy/image-search/internal/search"
	"github.com/pdiddy/image-search/internal/unsplash"
	"github.com/pdiddy/image-search/pkg/types"
)

// newController wires the Unsplash client and the search controller from
// configuration. Failed fetches are reported to logger.
func newController(cfg types.Config, logger *log.Logger) *search.Controller {
	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	client := unsplash.NewClient(httpClient, cfg.Unsplash, cfg.HTTP.UserAgent)
	return search.NewController(client,
		search.WithPresets(cfg.UI.Presets),
		search.WithStaleDiscard(cfg.UI.DiscardStale),
		search.WithLogger(logger),
	)
}
