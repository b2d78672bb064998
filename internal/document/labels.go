package document

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel folds a template label to its matching key: NFKC
// normalization (collapses full-width/half-width variants), surrounding
// whitespace trimmed, trailing full- or half-width colon stripped.
// "議題：" and "議題:" normalize identically.
func NormalizeLabel(label string) string {
	s := norm.NFKC.String(label)
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ":：")
	return strings.TrimSpace(s)
}

// NormalizeKeys rebuilds a field map with normalized keys. On collision
// the last-seen value wins.
func NormalizeKeys(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[NormalizeLabel(k)] = v
	}
	return out
}
