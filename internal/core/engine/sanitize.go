package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MaxMetadataLength is the longest value accepted by the payment metadata
// payload.
const MaxMetadataLength = 500

// printable is 0x20 through 0x7E. Newlines, tabs and every non-ASCII script
// fall outside it.
var printable = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0x20, Hi: 0x7e, Stride: 1}},
	LatinOffset: 1,
}

// Sanitize strips every character outside printable ASCII, trims the result
// and truncates it to MaxMetadataLength. The output is not HTML-escaped.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(runes.Remove(runes.NotIn(printable)), s)
	if err != nil {
		return ""
	}
	out = strings.TrimSpace(out)
	if len(out) > MaxMetadataLength {
		out = out[:MaxMetadataLength]
	}
	return out
}

// SanitizeMetadata sanitizes every value of m, dropping entries that end up
// empty. m is not modified.
func SanitizeMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v = Sanitize(v); v != "" {
			out[k] = v
		}
	}
	return out
}
