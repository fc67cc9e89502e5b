// Package fetchsrc supplies the ambient collaborators Fill's callers wire in
// front of pkg/formfill.Fill: a template fetcher and an on-disk cache for
// it. Neither is part of the core fill path — they exist so cmd/fill can
// accept a URL where pkg/formfill only accepts bytes. The HTTP download
// pattern (timeout client, size-limited reader, atomic temp-file rename)
// is grounded on pkg/fontutils's downloadFont.
package fetchsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TemplateFetcher retrieves template PDF bytes from some source keyed by a
// location string (typically a URL).
type TemplateFetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, string, string, error) // bytes, etag, lastModified, err
}

// maxTemplateSize bounds a single download to prevent resource exhaustion
// from a misbehaving or malicious template source.
const maxTemplateSize = 50 * 1024 * 1024

// HTTPTemplateFetcher fetches templates over HTTP(S), optionally sending
// conditional-request headers for cache revalidation.
type HTTPTemplateFetcher struct {
	Client *http.Client
}

// NewHTTPTemplateFetcher returns a fetcher with a bounded request timeout.
func NewHTTPTemplateFetcher() *HTTPTemplateFetcher {
	return &HTTPTemplateFetcher{Client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch downloads location, returning its body along with any ETag/
// Last-Modified response headers useful for a later conditional request.
func (f *HTTPTemplateFetcher) Fetch(ctx context.Context, location string) ([]byte, string, string, error) {
	return f.fetch(ctx, location, "", "")
}

// FetchConditional performs the same download but sends If-None-Match /
// If-Modified-Since when etag/lastModified are non-empty. A 304 response is
// reported via ErrNotModified with no body.
func (f *HTTPTemplateFetcher) FetchConditional(ctx context.Context, location, etag, lastModified string) ([]byte, string, string, error) {
	return f.fetch(ctx, location, etag, lastModified)
}

// ErrNotModified indicates the server confirmed the caller's cached copy is
// still current.
var ErrNotModified = fmt.Errorf("fetchsrc: template not modified")

func (f *HTTPTemplateFetcher) fetch(ctx context.Context, location, etag, lastModified string) ([]byte, string, string, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", "", fmt.Errorf("fetchsrc: build request: %w", err)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastModified != "" {
		req.Header.Set("If-Modified-Since", lastModified)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", "", fmt.Errorf("fetchsrc: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, etag, lastModified, ErrNotModified
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", "", fmt.Errorf("fetchsrc: fetch %s: HTTP %d", location, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxTemplateSize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, "", "", fmt.Errorf("fetchsrc: read %s: %w", location, err)
	}
	if len(body) > maxTemplateSize {
		return nil, "", "", fmt.Errorf("fetchsrc: template at %s exceeds %d bytes", location, maxTemplateSize)
	}

	return body, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), nil
}
