// Package render provides output renderers for anchorfix remap reports.
// A report can be rendered as Markdown (human review), JSON (tooling),
// or PDF (handoff to non-technical editors).
package render

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// labelFromHTML converts an element's inner HTML into a single-line
// Markdown label for report output. Conversion failures fall back to the
// raw fragment so a report never fails over a label.
func labelFromHTML(inner string) string {
	label, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		label = inner
	}
	label = strings.TrimSpace(label)
	return strings.Join(strings.Fields(label), " ")
}
