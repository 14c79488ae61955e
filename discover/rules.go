// Package discover expands fix-command arguments into HTML input files.
// Directory arguments are walked for HTML documents; everything else is
// skipped so a docs tree full of assets can be passed as-is.
package discover

import (
	"path/filepath"
	"strings"
)

// htmlExtensions are the file extensions treated as HTML input.
var htmlExtensions = map[string]bool{
	".html": true, ".htm": true, ".xhtml": true,
}

// IsHTMLFile reports whether a path looks like an HTML document.
func IsHTMLFile(path string) bool {
	return htmlExtensions[strings.ToLower(filepath.Ext(path))]
}
