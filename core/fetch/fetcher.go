// Package fetch retrieves remote HTML documents for the fix command.
// It enforces the core's input contract before anything reaches the
// parser: the response must be an HTML document, and oversized bodies
// are rejected rather than read into memory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "anchorfix/1.0 (+https://github.com/gaurav-prasanna/anchorfix)"

	// maxDocumentBytes caps how much of a response is read. Anchor
	// rewriting targets hand-authored documents and CMS exports, which
	// stay well under this.
	maxDocumentBytes = 16 << 20
)

// HTTPFetcher fetches HTML pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the HTML text of the given URL. Non-2xx responses and
// responses that declare a non-HTML Content-Type are errors; a missing
// Content-Type is tolerated since the parser is lenient anyway.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s: unexpected status %d", url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isHTMLContentType(ct) {
		return "", fmt.Errorf("%s: not an HTML document (Content-Type %q)", url, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	if len(body) > maxDocumentBytes {
		return "", fmt.Errorf("%s: document exceeds %d bytes", url, maxDocumentBytes)
	}

	return string(body), nil
}

// isHTMLContentType reports whether a Content-Type header names an HTML
// document. Parameters like charset are ignored.
func isHTMLContentType(ct string) bool {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = ct
	}
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}
