// Package core defines the shared types and stage interfaces for anchorfix.
// The anchor-rewriting core produces a RemapReport alongside the rewritten
// document; renderers turn that report into human- or machine-readable output.
package core

import "context"

// RemapEntry records one identifier assignment made by the scanner.
type RemapEntry struct {
	Tag       string `json:"tag"`
	Attr      string `json:"attr"` // "id" or "name", whichever was rewritten
	OldID     string `json:"old_id"`
	NewID     string `json:"new_id"`
	LabelHTML string `json:"-"` // inner HTML of the element, for report labels
}

// RemapReport is the full remap table produced by one processing run.
type RemapReport struct {
	Source      string       `json:"source"`
	Prefix      string       `json:"prefix"`
	GeneratedAt string       `json:"generated_at"` // ISO8601
	Entries     []RemapEntry `json:"entries"`
}

// Fetcher retrieves the HTML text of a URL, for fixing remote pages.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Renderer converts a RemapReport into a final output format.
type Renderer interface {
	Render(report *RemapReport) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
