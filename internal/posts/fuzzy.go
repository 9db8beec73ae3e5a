package posts

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// DefaultThreshold is the highest score still accepted as a match, on a
// scale from 0 (exact) to 1 (no match).
const DefaultThreshold = 0.3

// fold case-folds s for comparisons.
func fold(s string) string {
	return cases.Fold().String(s)
}

// fuzzyScore compares a folded pattern against a folded text. The score is
// the smallest edit distance between the pattern and any window of the text
// that starts on a word boundary, divided by the pattern length. ok is false
// when no window scores at or below threshold.
func fuzzyScore(pattern, text string, threshold float64) (float64, bool) {
	if pattern == "" || text == "" {
		return 1, false
	}
	if strings.Contains(text, pattern) {
		return 0, true
	}

	p := []rune(pattern)
	t := []rune(text)
	m := len(p)

	maxEdits := int(threshold * float64(m))
	if maxEdits <= 0 {
		return 1, false
	}

	best := maxEdits + 1
	for start := range t {
		if !isWindowStart(t, start) {
			continue
		}
		for length := max(1, m-maxEdits); length <= m+maxEdits; length++ {
			if start+length > len(t) {
				break
			}
			if d := fuzzy.LevenshteinDistance(pattern, string(t[start:start+length])); d < best {
				best = d
			}
		}
		if best == 1 {
			break
		}
	}

	if best > maxEdits {
		return 1, false
	}
	return float64(best) / float64(m), true
}

func isWindowStart(t []rune, i int) bool {
	if !isWordChar(t[i]) {
		return false
	}
	return i == 0 || !isWordChar(t[i-1])
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
