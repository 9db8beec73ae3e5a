package interfaces

import (
	"context"
	"time"
)

// MarkdownParser converts Markdown bodies into HTML. Implementations must
// assign heading ids with the same anchor rule used for outlines so in-page
// links resolve.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering, keeping option names readable
// for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string `toml:"extensions" json:"extensions,omitempty"`
	HardWraps  bool     `toml:"hard_wraps" json:"hard_wraps,omitempty"`
	SafeMode   bool     `toml:"safe_mode" json:"safe_mode,omitempty"`
}

// SourceLoader enumerates the article sources of a collection.
type SourceLoader interface {
	LoadCollection(ctx context.Context, collection string) ([]*Document, error)
}

// Document is a parsed article source: the metadata header, the trimmed body
// and where it came from.
type Document struct {
	// FilePath is the slash separated path relative to the source filesystem root.
	FilePath string
	// Collection is the configured collection the document was enumerated under.
	Collection string
	// Directory is the name of the directory directly enclosing the file.
	Directory   string
	FrontMatter FrontMatter
	Body        string
	// Checksum stores the SHA-256 digest of the original file content.
	Checksum []byte
}

// FrontMatter models metadata extracted from article headers. Unknown keys
// are kept in Custom; Raw holds every decoded key including the known ones.
type FrontMatter struct {
	Title   string         `json:"title,omitempty"`
	Summary string         `json:"summary,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
	Date    time.Time      `json:"date,omitempty"`
	DateRaw string         `json:"date_raw,omitempty"`
	Custom  map[string]any `json:"custom,omitempty"`
	Raw     map[string]any `json:"raw,omitempty"`
}

// HasDate reports whether the header carried a date that could be parsed.
func (fm FrontMatter) HasDate() bool {
	return !fm.Date.IsZero()
}
