package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/anchorfix/core"
)

// MarkdownRenderer renders the remap table as a Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds a Markdown table of every identifier assignment.
func (r *MarkdownRenderer) Render(report *core.RemapReport) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Anchor remap report\n\n")
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`  \n", report.Source)
	}
	fmt.Fprintf(&b, "Prefix: `%s`  \n", report.Prefix)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt)

	if len(report.Entries) == 0 {
		b.WriteString("No anchorable elements found.\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| # | Tag | Attr | Old ID | New ID | Label |\n")
	b.WriteString("|---|-----|------|--------|--------|-------|\n")
	for i, e := range report.Entries {
		fmt.Fprintf(&b, "| %d | %s | %s | `%s` | `%s` | %s |\n",
			i+1, e.Tag, e.Attr, e.OldID, e.NewID, escapePipes(labelFromHTML(e.LabelHTML)))
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// escapePipes keeps labels from breaking table cells.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
