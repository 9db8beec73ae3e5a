package markdown

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

const delimiter = "---"

// ErrFrontMatterInvalid reports a metadata header that is present but cannot be decoded.
var ErrFrontMatterInvalid = errors.New("markdown: frontmatter is malformed")

// FrontMatterError carries the decoding failure for a header along with the
// source path when known.
type FrontMatterError struct {
	Path string
	Err  error
}

func (e *FrontMatterError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: path=%s: %v", ErrFrontMatterInvalid.Error(), e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrFrontMatterInvalid.Error(), e.Err)
}

func (e *FrontMatterError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrFrontMatterInvalid, e.Err}
}

var yamlFormat = frontmatter.NewFormat(delimiter, delimiter, yaml.Unmarshal)

// ParseFrontMatter splits source into its metadata header and body. When the
// source does not open with a `---` delimited block the metadata is empty and
// the body is the source unchanged. Otherwise the body is everything after the
// closing delimiter, trimmed of surrounding whitespace.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, string, error) {
	if !hasFrontMatter(source) {
		return emptyFrontMatter(), string(source), nil
	}

	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return interfaces.FrontMatter{}, "", &FrontMatterError{Err: err}
	}

	return envelopeToFrontMatter(meta), strings.TrimSpace(string(body)), nil
}

// BuildDocument assembles a Document from the file path, collection and raw
// content. Header failures are reported as *FrontMatterError carrying path.
func BuildDocument(path, collection, directory string, source []byte) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		var fmErr *FrontMatterError
		if errors.As(err, &fmErr) {
			fmErr.Path = path
		}
		return nil, err
	}

	sum := sha256.Sum256(source)
	return &interfaces.Document{
		FilePath:    path,
		Collection:  collection,
		Directory:   directory,
		FrontMatter: fm,
		Body:        body,
		Checksum:    sum[:],
	}, nil
}

// hasFrontMatter reports whether source opens with a delimiter line that is
// later closed by another delimiter line.
func hasFrontMatter(source []byte) bool {
	rest := string(source)
	first, rest, ok := cutLine(rest)
	if !ok || strings.TrimSpace(first) != delimiter {
		return false
	}
	for rest != "" {
		var line string
		line, rest, _ = cutLine(rest)
		if strings.TrimSpace(line) == delimiter {
			return true
		}
	}
	return false
}

// cutLine returns the text before the first newline and the text after it.
// ok is false when s has no newline.
func cutLine(s string) (line, rest string, ok bool) {
	line, rest, ok = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, ok
}

type frontMatterEnvelope struct {
	Title   scalarText     `yaml:"title"`
	Summary scalarText     `yaml:"summary"`
	Tags    tagList        `yaml:"tags"`
	Date    headerDate     `yaml:"date"`
	Custom  map[string]any `yaml:",inline"`
}

// UnmarshalYAML decodes mapping headers. Any other well-formed YAML document
// (a sequence, a bare scalar) carries no fields and leaves the envelope empty.
func (e *frontMatterEnvelope) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	type plain frontMatterEnvelope
	return node.Decode((*plain)(e))
}

// scalarText renders a header value as text. Sequences join their scalar
// items with commas; mappings yield no text.
type scalarText string

func (s *scalarText) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			*s = scalarText(node.Value)
		}
	case yaml.SequenceNode:
		*s = scalarText(strings.Join(scalarItems(node), ","))
	case yaml.AliasNode:
		if node.Alias != nil {
			return s.UnmarshalYAML(node.Alias)
		}
	}
	return nil
}

// headerDate accepts YAML timestamps as well as quoted date strings in the
// layouts dateparse understands. Unparsable values keep their raw text;
// non-scalar values are ignored.
type headerDate struct {
	Time time.Time
	Raw  string
}

func (d *headerDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return nil
	}
	d.Raw = node.Value
	if node.Tag == "!!timestamp" {
		var ts time.Time
		if err := node.Decode(&ts); err == nil {
			d.Time = ts
			return nil
		}
	}
	value := strings.TrimSpace(node.Value)
	if value == "" {
		return nil
	}
	if ts, err := dateparse.ParseIn(value, time.UTC); err == nil {
		d.Time = ts
	}
	return nil
}

// tagList accepts either a sequence of tags or a single scalar tag. Nested
// values inside the sequence are skipped.
type tagList []string

func (t *tagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if value := strings.TrimSpace(node.Value); value != "" && node.Tag != "!!null" {
			*t = tagList{value}
		}
	case yaml.SequenceNode:
		*t = scalarItems(node)
	}
	return nil
}

func scalarItems(node *yaml.Node) []string {
	items := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind == yaml.ScalarNode && item.Tag != "!!null" {
			items = append(items, item.Value)
		}
	}
	return items
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	raw := make(map[string]any, len(env.Custom)+4)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = string(env.Title)
	}
	if env.Summary != "" {
		raw["summary"] = string(env.Summary)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if !env.Date.Time.IsZero() {
		raw["date"] = env.Date.Time
	} else if env.Date.Raw != "" {
		raw["date"] = env.Date.Raw
	}

	return interfaces.FrontMatter{
		Title:   string(env.Title),
		Summary: string(env.Summary),
		Tags:    append([]string(nil), env.Tags...),
		Date:    env.Date.Time,
		DateRaw: env.Date.Raw,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
	}
}

func emptyFrontMatter() interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Custom: map[string]any{},
		Raw:    map[string]any{},
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
