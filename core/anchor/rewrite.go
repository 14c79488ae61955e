package anchor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rewrite mutates the scanned tree in place: first the identifier pass,
// then the reference pass. Serialization is the pipeline's job.
func rewrite(doc *goquery.Document, targets []target, mapping map[string]string) {
	// Identifier pass: replace each anchorable element's identifier with
	// its assigned value. SetAttr overwrites, so no old value survives.
	for _, t := range targets {
		t.sel.SetAttr(t.attr, t.newID)
	}

	// Reference pass: any attribute value that is fragment-only (leading
	// "#", so no scheme, host, or path precedes it) is a rewrite candidate,
	// regardless of tag or attribute name. Targets that don't resolve to a
	// known identifier are left alone.
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		for i, a := range node.Attr {
			if !strings.HasPrefix(a.Val, "#") {
				continue
			}
			if newID, ok := mapping[normalizeFragment(a.Val[1:])]; ok {
				node.Attr[i].Val = "#" + newID
			}
		}
	})
}
