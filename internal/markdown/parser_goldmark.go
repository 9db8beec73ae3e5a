package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark engine.
// Heading ids are generated with AnchorID so they match ExtractHeadings. The
// parser holds no per-call state and can be shared.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser constructs a parser with the supplied defaults. With no
// extensions configured GFM, linkify, task lists and code highlighting are
// enabled.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

// Parse renders Markdown into HTML using the parser's default configuration.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders Markdown into HTML using the provided options.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	engine := newGoldmarkEngine(opts)
	ctx := parser.NewContext(parser.WithIDs(anchorIDs{}))

	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

// MergeParseOptions overlays override on base. Extensions replace the base
// list when present; boolean toggles can only be switched on.
func MergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

// anchorIDs satisfies parser.IDs. Duplicate headings share an id, the same
// way the outline reports them.
type anchorIDs struct{}

func (anchorIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(AnchorID(string(value)))
}

func (anchorIDs) Put([]byte) {}

func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}

	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
	"highlight":     codeHighlighting,
}

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github-dark"

// codeHighlighting emits chroma css classes and wraps each fenced block
// with its upper cased language label, "CODE" when none is declared. Blocks
// chroma cannot lex are written as plain pre/code inside the same wrapper.
var codeHighlighting = highlighting.NewHighlighting(
	highlighting.WithStyle(HighlightStyle),
	highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
	highlighting.WithWrapperRenderer(renderCodeWrapper),
)

func renderCodeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	if !entering {
		if !ctx.Highlighted() {
			_, _ = w.WriteString("</code></pre>\n")
		}
		_, _ = w.WriteString("</div>\n")
		return
	}

	label := "CODE"
	if lang, ok := ctx.Language(); ok && len(lang) > 0 {
		label = strings.ToUpper(string(lang))
	}
	_, _ = w.WriteString(`<div class="code-block"><span class="code-language">`)
	_, _ = w.Write(util.EscapeHTML([]byte(label)))
	_, _ = w.WriteString("</span>\n")
	if !ctx.Highlighted() {
		_, _ = w.WriteString("<pre><code>")
	}
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
			codeHighlighting,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
