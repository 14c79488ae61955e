package anchor

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/anchorfix/core"
)

// anchorableSelector matches every element kind eligible for renumbering.
// goquery yields matches in document order, which fixes assignment order.
const anchorableSelector = "h1, h2, h3, h4, h5, h6, a"

// target pairs an anchorable element with the attribute that names it and
// the identifier it will receive. Headings read and write "id" only; <a>
// reads "id" first, falls back to the legacy "name", and writes back to
// whichever attribute it read from.
type target struct {
	sel   *goquery.Selection
	tag   string
	attr  string // "id", or "name" for legacy anchors
	oldID string // raw attribute value as declared in the source
	newID string
}

// identifierAttr resolves which attribute names the element, if any.
// Elements with neither attribute are not anchorable.
func identifierAttr(s *goquery.Selection, tag string) (attr, value string, ok bool) {
	if v, found := s.Attr("id"); found {
		return "id", v, true
	}
	if tag == "a" {
		if v, found := s.Attr("name"); found {
			return "name", v, true
		}
	}
	return "", "", false
}

// scan walks the document in source order, assigns a fresh sequential
// identifier to every anchorable element, and builds the mapping from
// normalized old identifier to new identifier. A second element resolving
// to an already-mapped key aborts the scan with a DuplicateIDError, so no
// partial mapping ever reaches the rewriter.
func scan(doc *goquery.Document, gen *generator) ([]target, map[string]string, error) {
	var (
		targets []target
		scanErr error
	)
	mapping := make(map[string]string)

	doc.Find(anchorableSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		tag := goquery.NodeName(s)
		attr, oldID, ok := identifierAttr(s, tag)
		if !ok {
			return true // not anchorable, leave untouched
		}

		key := normalizeFragment(oldID)
		if _, exists := mapping[key]; exists {
			scanErr = &DuplicateIDError{ID: key}
			return false
		}

		newID := gen.next()
		mapping[key] = newID
		targets = append(targets, target{sel: s, tag: tag, attr: attr, oldID: oldID, newID: newID})
		return true
	})

	if scanErr != nil {
		return nil, nil, scanErr
	}
	return targets, mapping, nil
}

// reportEntries converts scan targets into remap-report entries, capturing
// each element's inner HTML as the report label source.
func reportEntries(targets []target) []core.RemapEntry {
	entries := make([]core.RemapEntry, 0, len(targets))
	for _, t := range targets {
		label, err := t.sel.Html()
		if err != nil {
			label = ""
		}
		entries = append(entries, core.RemapEntry{
			Tag:       t.tag,
			Attr:      t.attr,
			OldID:     t.oldID,
			NewID:     t.newID,
			LabelHTML: label,
		})
	}
	return entries
}
