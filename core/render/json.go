package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/anchorfix/core"
)

// JSONRenderer renders the remap table as indented JSON for tooling.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// jsonEntry extends a RemapEntry with the rendered Markdown label.
type jsonEntry struct {
	core.RemapEntry
	Label string `json:"label"`
}

// jsonReport mirrors RemapReport with labeled entries.
type jsonReport struct {
	Source      string      `json:"source"`
	Prefix      string      `json:"prefix"`
	GeneratedAt string      `json:"generated_at"`
	Entries     []jsonEntry `json:"entries"`
}

// Render marshals the report, resolving each entry's label.
func (r *JSONRenderer) Render(report *core.RemapReport) ([]byte, error) {
	out := jsonReport{
		Source:      report.Source,
		Prefix:      report.Prefix,
		GeneratedAt: report.GeneratedAt,
		Entries:     make([]jsonEntry, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		out.Entries = append(out.Entries, jsonEntry{
			RemapEntry: e,
			Label:      labelFromHTML(e.LabelHTML),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
