// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/pdiddy/image-search/internal/search"

// fetchResultMsg carries a finished fetch back into the update loop.
type fetchResultMsg struct {
	result search.Result
}
