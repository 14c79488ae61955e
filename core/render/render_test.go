package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/anchorfix/core"
)

func sampleReport() *core.RemapReport {
	return &core.RemapReport{
		Source:      "docs/guide.html",
		Prefix:      "a",
		GeneratedAt: "2026-08-27T00:00:00Z",
		Entries: []core.RemapEntry{
			{Tag: "h2", Attr: "id", OldID: "intro", NewID: "a0001", LabelHTML: "Intro to <code>anchorfix</code>"},
			{Tag: "a", Attr: "name", OldID: "old-anchor", NewID: "a0002", LabelHTML: "jump here"},
		},
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# Anchor remap report")
	assert.Contains(t, out, "`docs/guide.html`")
	assert.Contains(t, out, "| 1 | h2 | id | `intro` | `a0001` |")
	assert.Contains(t, out, "| 2 | a | name | `old-anchor` | `a0002` |")
	// Inner HTML is converted to a Markdown label.
	assert.Contains(t, out, "Intro to `anchorfix`")
	assert.Equal(t, ".md", r.Extension())
}

func TestMarkdownRenderer_EmptyReport(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(&core.RemapReport{Prefix: "a"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "No anchorable elements found.")
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	var decoded struct {
		Source  string `json:"source"`
		Prefix  string `json:"prefix"`
		Entries []struct {
			Tag   string `json:"tag"`
			Attr  string `json:"attr"`
			OldID string `json:"old_id"`
			NewID string `json:"new_id"`
			Label string `json:"label"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "docs/guide.html", decoded.Source)
	assert.Equal(t, "a", decoded.Prefix)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "intro", decoded.Entries[0].OldID)
	assert.Equal(t, "a0001", decoded.Entries[0].NewID)
	assert.Equal(t, "Intro to `anchorfix`", decoded.Entries[0].Label)
	assert.Equal(t, ".json", r.Extension())
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF")
	assert.Equal(t, ".pdf", r.Extension())
}

func TestLabelFromHTML(t *testing.T) {
	assert.Equal(t, "plain heading", labelFromHTML("plain heading"))
	assert.Equal(t, "with `code`", labelFromHTML("with <code>code</code>"))
	// Multi-line inner HTML collapses to one line.
	assert.Equal(t, "two words", labelFromHTML("two\n   words"))
}
