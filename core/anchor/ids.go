// Package anchor implements the anchor-rewriting core.
// It scans an HTML document for anchorable elements (headings and <a> tags
// carrying an id or name), renumbers them sequentially, and rewrites every
// same-document fragment link so the document stays internally consistent.
package anchor

import "fmt"

// DefaultPrefix is the identifier prefix used when none is configured.
const DefaultPrefix = "a"

// generator produces sequential anchor identifiers (a0001, a0002, ...).
// State is local to one processing run; concurrent runs never share one.
type generator struct {
	prefix string
	n      int
}

// next returns the next identifier. Counters are zero-padded to four
// digits and widen naturally past 9999.
func (g *generator) next() string {
	g.n++
	return fmt.Sprintf("%s%04d", g.prefix, g.n)
}
