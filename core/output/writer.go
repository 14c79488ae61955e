// Package output handles file naming and writing for anchorfix results.
// Fixed documents keep their original base name and extension; remap
// reports get a ".report" infix so they sit next to the document they
// describe. Inputs from different directories that collapse to the same
// output name are disambiguated with a numeric suffix.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes fixed documents and reports to disk.
type Writer struct {
	OutputDir string

	taken map[string]bool // output names already claimed by this Writer
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir, taken: make(map[string]bool)}, nil
}

// WriteFixed writes a rewritten document under the output directory,
// keeping the input's base name and extension. docs/a.html and misc/a.html
// written through the same Writer come out as a.html and a_2.html.
func (w *Writer) WriteFixed(input string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, w.reserve(BaseName(input), fixedExt(input)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteReport writes a remap report next to its document:
// docs/guide.html → <output_dir>/guide.report.md (or .json, .pdf).
func (w *Writer) WriteReport(input string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, w.reserve(BaseName(input)+".report", ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// reserve claims an output filename for this Writer, suffixing the stem
// (a_2, a_3, ...) when another input already claimed the same name.
func (w *Writer) reserve(stem, ext string) string {
	name := stem + ext
	for n := 2; w.taken[name]; n++ {
		name = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
	w.taken[name] = true
	return name
}

// fixedExt keeps the input's own extension so .htm and .xhtml files are
// not silently renamed; URLs and extension-less inputs get .html.
func fixedExt(input string) string {
	if isURL(input) {
		return ".html"
	}
	if ext := filepath.Ext(input); ext != "" {
		return ext
	}
	return ".html"
}

// BaseName derives a flat output name from a file path or URL, without
// extension. URLs collapse to domain_path form (e.g. example_com_docs).
func BaseName(input string) string {
	if isURL(input) {
		return nameFromURL(input)
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// nameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func nameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
