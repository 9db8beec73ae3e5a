package posts

import (
	"strings"
	"unicode"
)

// DeriveCategory maps a collection directory name to its category: a hyphen
// goes between every ASCII lowercase letter directly followed by an ASCII
// uppercase letter, then the result is lowercased. Runs of capitals are not
// split, so "GenAI" becomes "gen-ai" and "DSA" becomes "dsa".
func DeriveCategory(collection string) string {
	var b strings.Builder
	b.Grow(len(collection) + 4)
	for i := 0; i < len(collection); i++ {
		c := collection[i]
		b.WriteByte(c)
		if isASCIILower(c) && i+1 < len(collection) && isASCIIUpper(collection[i+1]) {
			b.WriteByte('-')
		}
	}
	return strings.ToLower(b.String())
}

// NormalizeCategory lowercases category and replaces every whitespace run
// with a single hyphen, so "System Design" and "system-design" compare equal.
func NormalizeCategory(category string) string {
	lower := strings.ToLower(category)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIILower(c byte) bool { return c >= 'a' && c <= 'z' }
func isASCIIUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// CategoryKey is the comparison form of a category. Collection names,
// display labels and derived categories of the same topic share a key:
// "GenAI", "gen-ai" and "Gen AI" all map to "gen-ai".
func CategoryKey(category string) string {
	return NormalizeCategory(DeriveCategory(strings.TrimSpace(category)))
}
