package markdown

import "strings"

// AnchorID derives the in-page anchor for a heading: the text is lowercased,
// every run of characters outside [A-Za-z0-9_] collapses into a single hyphen,
// and one leading and one trailing hyphen are trimmed. Outlines and rendered
// HTML must both use this function so anchor links resolve.
func AnchorID(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	inRun := false
	for _, r := range lower {
		if isWordRune(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}

	id := b.String()
	id = strings.TrimPrefix(id, "-")
	id = strings.TrimSuffix(id, "-")
	return id
}

// isWordRune matches the ASCII word class; non-ASCII letters are separators.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
