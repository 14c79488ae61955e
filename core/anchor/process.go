package anchor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/anchorfix/core"
)

// ProcessHTML rewrites anchors in the given document and returns the
// serialized result: parse → scan → rewrite → serialize. Empty input maps
// to empty output. A duplicate identifier in the source aborts with a
// *DuplicateIDError and no output.
func ProcessHTML(htmlText, prefix string) (string, error) {
	out, _, err := Remap(htmlText, prefix)
	return out, err
}

// ProcessHTMLFile reads the file at path as UTF-8 and processes it like
// ProcessHTML. The rewritten text is returned, not written back; writing
// is the caller's responsibility. A missing file surfaces as an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ProcessHTMLFile(path, prefix string) (string, error) {
	out, _, err := RemapFile(path, prefix)
	return out, err
}

// Remap is ProcessHTML plus the remap table describing every identifier
// assignment, for report rendering.
func Remap(htmlText, prefix string) (string, *core.RemapReport, error) {
	report := &core.RemapReport{
		Prefix:      prefix,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if htmlText == "" {
		return "", report, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", nil, fmt.Errorf("parsing HTML: %w", err)
	}

	gen := &generator{prefix: prefix}
	targets, mapping, err := scan(doc, gen)
	if err != nil {
		return "", nil, err
	}
	report.Entries = reportEntries(targets)

	rewrite(doc, targets, mapping)

	out, err := serialize(doc)
	if err != nil {
		return "", nil, fmt.Errorf("serializing HTML: %w", err)
	}
	return out, report, nil
}

// RemapFile is Remap over a file, recording the source path in the report.
func RemapFile(path, prefix string) (string, *core.RemapReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}
	out, report, err := Remap(string(data), prefix)
	if err != nil {
		return "", nil, err
	}
	report.Source = path
	return out, report, nil
}

// serialize renders the full document tree back to text.
func serialize(doc *goquery.Document) (string, error) {
	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		if err := html.Render(&b, node); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
