// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search holds the photo search controller: the state behind the
// search field, the page counter and the result grid, and the rules tying
// them to the outbound fetch.
//
// A fetch is split in two halves. Operations that trigger a fetch return a
// Request; the caller executes it (possibly on another goroutine) and feeds
// the Result back through Apply. Results are applied in the order Apply is
// called, so when two requests overlap the one that resolves last wins,
// whatever page it was for. WithStaleDiscard turns on sequence checking
// for callers that want the corrected behavior.
package search

import (
	"context"
	"io"
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/pdiddy/image-search/pkg/types"
)

// PageSize is the number of photos requested per page.
const PageSize = 20

// FailureMessage is shown whenever a fetch fails, whatever the cause.
const FailureMessage = "Oops! something went wrong. Please try again later ..."

// DefaultPresets are the quick-filter terms offered when none are configured.
var DefaultPresets = []string{"anonymous", "python", "code", "linux"}

// Searcher fetches one page of photos. Implemented by *unsplash.Client.
type Searcher interface {
	SearchPhotos(ctx context.Context, query string, page, perPage int) (types.PhotoPage, error)
}

// Request describes one outbound fetch, captured at the moment it was issued.
type Request struct {
	// ID identifies the request in diagnostics.
	ID string

	// Seq increases by one for every request the controller issues.
	Seq uint64

	Query   string
	Page    int
	PerPage int
}

// Result is the outcome of executing a Request.
type Result struct {
	Request Request
	Page    types.PhotoPage
	Err     error
}

// State is a snapshot of the controller.
type State struct {
	Query        string
	Page         int
	TotalPages   int
	ErrorMessage string
	Results      []types.Photo

	// InFlight counts requests issued but not yet applied.
	InFlight int
}

// CanPrev reports whether the Previous control is enabled.
func (s State) CanPrev() bool { return s.Page > 1 }

// CanNext reports whether the Next control is enabled.
func (s State) CanNext() bool { return s.Page < s.TotalPages }

// Option configures a Controller.
type Option func(*Controller)

// WithPresets replaces DefaultPresets. Empty terms are ignored.
func WithPresets(presets []string) Option {
	return func(c *Controller) {
		var kept []string
		for _, p := range presets {
			if p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			c.presets = kept
		}
	}
}

// WithStaleDiscard makes Apply drop results older than the last applied one.
func WithStaleDiscard(enabled bool) Option {
	return func(c *Controller) { c.discardStale = enabled }
}

// WithLogger sets the destination for fetch diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the search state. It is not safe for concurrent use,
// except for Execute which only reads the searcher and the logger.
type Controller struct {
	searcher     Searcher
	presets      []string
	discardStale bool
	log          *log.Logger

	query      string
	page       int
	totalPages int
	errMsg     string
	results    []types.Photo

	seq      uint64
	applied  uint64
	inFlight int
}

// NewController returns a controller on page 1 with an empty field.
func NewController(searcher Searcher, opts ...Option) *Controller {
	c := &Controller{
		searcher: searcher,
		presets:  slices.Clone(DefaultPresets),
		log:      log.New(io.Discard, "", 0),
		page:     1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Presets returns the configured quick-filter terms.
func (c *Controller) Presets() []string {
	return slices.Clone(c.presets)
}

// Query returns the current field value.
func (c *Controller) Query() string { return c.query }

// SetQuery records an edit of the search field. It does not fetch.
func (c *Controller) SetQuery(q string) { c.query = q }

// SubmitSearch submits term as the new search: the error is cleared, the page
// goes back to 1 and a fetch is issued. An empty term leaves the state alone.
func (c *Controller) SubmitSearch(term string) (Request, bool) {
	if term == "" {
		return Request{}, false
	}
	c.query = term
	c.errMsg = ""
	c.page = 1
	return c.fetchPage()
}

// SelectPreset overwrites the field with term and submits it. Terms that are
// not configured presets are ignored.
func (c *Controller) SelectPreset(term string) (Request, bool) {
	if !slices.Contains(c.presets, term) {
		return Request{}, false
	}
	c.query = term
	return c.SubmitSearch(term)
}

// GoToPage moves one page back (delta -1) or forward (delta +1) and fetches
// the new page for the current field value. Moving back from page 1, moving
// forward from the last known page, or any other delta is a no-op.
//
// The returned bool reports whether a fetch was issued; the page moves even
// when the field is empty and nothing can be fetched.
func (c *Controller) GoToPage(delta int) (Request, bool) {
	switch {
	case delta == -1 && c.page > 1:
	case delta == 1 && c.page < c.totalPages:
	default:
		return Request{}, false
	}
	c.page += delta
	return c.fetchPage()
}

// Reload fetches the current page again.
func (c *Controller) Reload() (Request, bool) {
	return c.fetchPage()
}

// fetchPage issues a request for the live field value and the current page.
func (c *Controller) fetchPage() (Request, bool) {
	if c.query == "" {
		return Request{}, false
	}
	c.errMsg = ""
	c.seq++
	c.inFlight++
	return Request{
		ID:      uuid.NewString(),
		Seq:     c.seq,
		Query:   c.query,
		Page:    c.page,
		PerPage: PageSize,
	}, true
}

// Execute performs the network call for req. It does not touch the
// controller state and may run on any goroutine.
func (c *Controller) Execute(ctx context.Context, req Request) Result {
	page, err := c.searcher.SearchPhotos(ctx, req.Query, req.Page, req.PerPage)
	if err != nil {
		c.log.Printf("fetch %s (query=%q page=%d) failed: %v", req.ID, req.Query, req.Page, err)
	}
	return Result{Request: req, Page: page, Err: err}
}

// Apply folds a finished fetch into the state and reports whether it was
// applied. A failure sets the error message and keeps the previous results
// and page count on screen. A success replaces the results and page count
// but leaves the error message as it is.
func (c *Controller) Apply(res Result) bool {
	if c.inFlight > 0 {
		c.inFlight--
	}
	if c.discardStale && res.Request.Seq < c.applied {
		c.log.Printf("fetch %s (page=%d) discarded: seq %d older than %d", res.Request.ID, res.Request.Page, res.Request.Seq, c.applied)
		return false
	}
	if res.Request.Seq > c.applied {
		c.applied = res.Request.Seq
	}

	if res.Err != nil {
		c.errMsg = FailureMessage
		return true
	}
	c.results = res.Page.Results
	c.totalPages = res.Page.TotalPages
	return true
}

// Run executes req and applies its result before returning.
func (c *Controller) Run(ctx context.Context, req Request) Result {
	res := c.Execute(ctx, req)
	c.Apply(res)
	return res
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{
		Query:        c.query,
		Page:         c.page,
		TotalPages:   c.totalPages,
		ErrorMessage: c.errMsg,
		Results:      slices.Clone(c.results),
		InFlight:     c.inFlight,
	}
}
