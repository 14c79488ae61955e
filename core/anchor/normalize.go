package anchor

import (
	"net/url"
	"regexp"
)

// nonWordPattern matches runs of characters that CMS anchor generators
// commonly drop: everything outside letters, digits, underscore, hyphen.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// normalizeFragment converts a declared identifier or a fragment target
// into the canonical form used as a mapping key. Percent-encoded sequences
// (including multi-byte ones) are decoded, then non-word punctuation is
// stripped, so `sigstore(%E3%82%B7...)-...` and its paren-less encoded
// reference compare equal.
//
// A malformed percent sequence is not an error: the raw string is used as
// given, so the fragment simply fails to match anything.
func normalizeFragment(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		decoded = s
	}
	return nonWordPattern.ReplaceAllString(decoded, "")
}
