package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// LevelSection is assigned to single-hash headings.
	LevelSection = 2
	// LevelSubsection is assigned to double-hash headings.
	LevelSubsection = 3
)

// Heading is one outline entry of an article.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	ID    string `json:"id"`
}

// ExtractHeadings scans content line by line and returns the outline in order
// of appearance. Only lines opening with exactly one or two hash markers
// followed by whitespace are headings; `#` maps to LevelSection and `##`
// to LevelSubsection. Deeper markers are not part of the outline.
func ExtractHeadings(content string) []Heading {
	var headings []Heading

	rest := content
	for rest != "" {
		var line string
		line, rest, _ = cutLine(rest)

		text, level, ok := matchHeading(line)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Text:  text,
			Level: level,
			ID:    AnchorID(text),
		})
	}

	return headings
}

func matchHeading(line string) (string, int, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", 0, false
	}

	level := LevelSection
	marker := 1
	if strings.HasPrefix(line, "##") {
		level = LevelSubsection
		marker = 2
	}

	remainder := line[marker:]
	first, _ := utf8.DecodeRuneInString(remainder)
	if remainder == "" || !unicode.IsSpace(first) {
		return "", 0, false
	}

	text := strings.TrimSpace(remainder)
	if text == "" {
		return "", 0, false
	}
	return text, level, true
}
