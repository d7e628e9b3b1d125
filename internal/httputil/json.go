// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the photo search client.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %s", e.Status)
}

// GetJSON executes req with ctx and decodes the JSON body into v.
//
// A non-2xx response is returned as a *StatusError after the body has been
// drained and closed. The request is sent once: there is no retry and no
// backoff. Decoding failures are returned wrapped so callers can tell them
// apart from transport errors with errors.As on *json.SyntaxError or
// *json.UnmarshalTypeError.
func GetJSON(ctx context.Context, client *http.Client, req *http.Request, v any) error {
	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
