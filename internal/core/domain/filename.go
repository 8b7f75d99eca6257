package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser performs Unicode-aware case folding for filename identity
// comparisons. Centralised here per the "one helper" rule: every
// plugin/CRC/condition lookup keyed by filename goes through FoldFilename.
var foldCaser = cases.Fold()

// FoldFilename returns the case-folded form of a filename, used as the key
// for every case-insensitive lookup (plugin cache, CRC cache, masters,
// requirements). The original, case-preserved string is kept separately for
// output.
func FoldFilename(name string) string {
	return foldCaser.String(name)
}

// EqualFilenames reports whether two filenames are equal under Unicode case
// folding.
func EqualFilenames(a, b string) bool {
	return FoldFilename(a) == FoldFilename(b)
}

// CompareFilenames orders two filenames case-insensitively, returning a
// negative number, zero, or a positive number as a < b, a == b, or a > b.
func CompareFilenames(a, b string) int {
	return strings.Compare(FoldFilename(a), FoldFilename(b))
}
