// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package unsplash queries the Unsplash photo search API.
package unsplash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/image-search/internal/httputil"
	"github.com/pdiddy/image-search/pkg/types"
)

// DefaultSearchURL is the Unsplash search-photos endpoint.
const DefaultSearchURL = "https://api.unsplash.com/search/photos"

// ErrMalformedResponse is returned when the response body decodes but does
// not carry the expected search result shape.
var ErrMalformedResponse = errors.New("malformed search response")

// Client issues search requests against the Unsplash API. The access key
// is sent as the client_id query parameter.
type Client struct {
	HTTP      *http.Client
	AccessKey string
	UserAgent string

	// BaseURL overrides DefaultSearchURL when set.
	BaseURL string
}

// NewClient builds a client from configuration. The access key is copied
// once; later changes to cfg have no effect.
func NewClient(httpClient *http.Client, cfg types.UnsplashConfig, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HTTP:      httpClient,
		AccessKey: cfg.AccessKey,
		UserAgent: userAgent,
		BaseURL:   cfg.BaseURL,
	}
}

// SearchPhotos fetches one page of photos matching query. page starts at 1.
func (c *Client) SearchPhotos(ctx context.Context, query string, page, perPage int) (types.PhotoPage, error) {
	if query == "" {
		return types.PhotoPage{}, fmt.Errorf("empty Unsplash query")
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultSearchURL
	}

	params := url.Values{
		"query":     {query},
		"page":      {strconv.Itoa(page)},
		"per_page":  {strconv.Itoa(perPage)},
		"client_id": {c.AccessKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return types.PhotoPage{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept-Version", "v1")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	var sr searchResponse
	if err := httputil.GetJSON(ctx, client, req, &sr); err != nil {
		return types.PhotoPage{}, fmt.Errorf("Unsplash API request: %w", err)
	}
	if sr.Results == nil {
		return types.PhotoPage{}, fmt.Errorf("Unsplash API response: %w: missing results", ErrMalformedResponse)
	}

	photos := make([]types.Photo, 0, len(*sr.Results))
	for _, p := range *sr.Results {
		photo := types.Photo{
			ID:           p.ID,
			ThumbnailURL: p.URLs.Small,
		}
		if p.AltDescription != nil {
			photo.Description = *p.AltDescription
		}
		photos = append(photos, photo)
	}

	return types.PhotoPage{
		Results:    photos,
		Total:      sr.Total,
		TotalPages: sr.TotalPages,
	}, nil
}

// Unsplash API JSON structures. Only the fields the UI shows are decoded.
type searchResponse struct {
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Results    *[]unsplashPhoto `json:"results"`
}

type unsplashPhoto struct {
	ID             string       `json:"id"`
	AltDescription *string      `json:"alt_description"`
	URLs           unsplashURLs `json:"urls"`
}

type unsplashURLs struct {
	Raw     string `json:"raw"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}
