package blog

import (
	"context"
	"io"
	"io/fs"

	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Post exports the article snapshot.
type Post = posts.Post

// Catalog exports the ordered, slug-indexed post snapshot.
type Catalog = posts.Catalog

// Match exports a scored free-text search hit.
type Match = posts.Match

// Heading exports one outline entry of an article.
type Heading = markdown.Heading

// PostService exports the post loading contract.
type PostService = posts.Service

// Option customises the module dependency graph.
type Option = di.Option

// WithFS sets the filesystem holding Config.ContentDir, for example an
// embed.FS bundled at build time. Defaults to the working directory.
func WithFS(fsys fs.FS) Option { return di.WithFS(fsys) }

// WithLoggerProvider overrides the provider selected from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithLogWriter redirects console logging output.
func WithLogWriter(w io.Writer) Option { return di.WithLogWriter(w) }

// WithMarkdownParser overrides the HTML renderer.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return di.WithMarkdownParser(parser)
}

// WithSourceLoader overrides how collections are enumerated.
func WithSourceLoader(source interfaces.SourceLoader) Option {
	return di.WithSourceLoader(source)
}

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, classify(err)
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.container.Config
}

// Posts returns the post loading service.
func (m *Module) Posts() PostService {
	return m.container.PostService()
}

// LoggerProvider returns the logger provider in use.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// LoadAll reads every configured collection and returns the posts ordered
// by publish date descending.
func (m *Module) LoadAll(ctx context.Context) ([]Post, error) {
	list, err := m.container.PostService().LoadAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}

// LoadBySlug reads every configured collection and returns the post with slug.
func (m *Module) LoadBySlug(ctx context.Context, slug string) (Post, error) {
	post, err := m.container.PostService().LoadBySlug(ctx, slug)
	if err != nil {
		return Post{}, classify(err)
	}
	return post, nil
}

// Catalog builds a fresh snapshot bound to the configured query and related settings.
func (m *Module) Catalog(ctx context.Context) (*Catalog, error) {
	catalog, err := m.container.PostService().Catalog(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return catalog, nil
}

// RelatedTo loads the catalog and returns up to limit posts related to the
// post with slug. A non-positive limit uses the configured default.
func (m *Module) RelatedTo(ctx context.Context, slug string, limit int) ([]Post, error) {
	catalog, err := m.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	current, err := catalog.Get(slug)
	if err != nil {
		return nil, classify(err)
	}
	return catalog.Related(current, limit), nil
}

// Query filters posts with the configured engine.
func (m *Module) Query(list []Post, category, text string) []Post {
	return m.container.QueryEngine().Query(list, category, text)
}

// Search filters list by category and ranks it against text, keeping the
// score and matched field of every hit.
func (m *Module) Search(list []Post, category, text string) []Match {
	engine := m.container.QueryEngine()
	return engine.Search(engine.FilterCategory(list, category), text)
}

// Render converts the post content into HTML. Heading ids match Headings.
func (m *Module) Render(post Post) ([]byte, error) {
	html, err := m.container.MarkdownParser().Parse([]byte(post.Content))
	if err != nil {
		return nil, classify(err)
	}
	return html, nil
}

// ReadingTime estimates the minutes needed to read post at the configured speed.
func (m *Module) ReadingTime(post Post) int {
	return post.ReadingTime(m.container.Config.ReadingSpeed)
}

// Query filters posts by category and free text with the default engine.
func Query(list []Post, category, text string) []Post {
	return posts.Query(list, category, text)
}

// Related selects up to limit posts sharing the category or a tag of current.
func Related(all []Post, current Post, limit int) []Post {
	return posts.Related(all, current, limit)
}

// ExtractHeadings returns the outline of a post body.
func ExtractHeadings(content string) []Heading {
	return markdown.ExtractHeadings(content)
}

// AnchorID derives the in-page anchor used for heading text.
func AnchorID(text string) string {
	return markdown.AnchorID(text)
}

// DeriveCategory maps a collection directory name to its category.
func DeriveCategory(collection string) string {
	return posts.DeriveCategory(collection)
}

// CategoryLabel renders a category for display ("system-design" -> "System Design").
func CategoryLabel(category string) string {
	return posts.CategoryLabel(category)
}

// NormalizeCategory prepares a category for comparison.
func NormalizeCategory(category string) string {
	return posts.NormalizeCategory(category)
}
