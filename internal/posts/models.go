package posts

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultReadingSpeed is the words-per-minute rate used for reading time.
const DefaultReadingSpeed = 200

// Post is an article snapshot. Values are read-only once loaded; slices and
// maps are shared with the catalog and must not be mutated.
type Post struct {
	Slug       string         `json:"slug"`
	Category   string         `json:"category"`
	Title      string         `json:"title,omitempty"`
	Summary    string         `json:"summary,omitempty"`
	Date       time.Time      `json:"date,omitzero"`
	DateRaw    string         `json:"date_raw,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Content    string         `json:"content"`
	Collection string         `json:"collection"`
	SourcePath string         `json:"source_path"`
	Checksum   []byte         `json:"-"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// PostMetadata holds the header fields an article may declare. Loader derived
// fields (slug, category, content) are never taken from metadata.
type PostMetadata struct {
	Title   string
	Summary string
	Date    time.Time
	DateRaw string
	Tags    []string
	Extra   map[string]any
}

// reservedKeys are derived by the loader and win over same-named header keys.
var reservedKeys = []string{"slug", "category", "content"}

// newPost merges meta under the derived fields.
func newPost(slug, category, content string, meta PostMetadata) Post {
	extra := make(map[string]any, len(meta.Extra))
	for key, value := range meta.Extra {
		if slices.Contains(reservedKeys, strings.ToLower(key)) {
			continue
		}
		extra[key] = value
	}

	return Post{
		Slug:     slug,
		Category: category,
		Title:    meta.Title,
		Summary:  meta.Summary,
		Date:     meta.Date,
		DateRaw:  meta.DateRaw,
		Tags:     slices.Clone(meta.Tags),
		Content:  content,
		Extra:    extra,
	}
}

// HasDate reports whether the post carries a usable publish date.
func (p Post) HasDate() bool {
	return !p.Date.IsZero()
}

// HasTag reports whether tag is one of the post tags.
func (p Post) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// ReadingTime estimates minutes to read the content at wordsPerMinute,
// rounded up, never less than one minute.
func (p Post) ReadingTime(wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultReadingSpeed
	}
	words := len(strings.Fields(p.Content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return max(minutes, 1)
}

// CategoryLabel renders the category for display: hyphens become spaces and
// each word is title cased ("system-design" -> "System Design").
func (p Post) CategoryLabel() string {
	return CategoryLabel(p.Category)
}

// CategoryLabel renders a normalized category for display.
func CategoryLabel(category string) string {
	// Casers are stateful and must not be shared across goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}
