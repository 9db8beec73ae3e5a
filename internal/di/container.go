package di

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/console"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Container wires module dependencies from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	fs             fs.FS
	logWriter      io.Writer
	loggerProvider interfaces.LoggerProvider

	parser      interfaces.MarkdownParser
	source      interfaces.SourceLoader
	queryEngine *posts.QueryEngine
	postSvc     posts.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithFS sets the filesystem holding the content directory. Defaults to the
// working directory.
func WithFS(fsys fs.FS) Option {
	return func(c *Container) {
		if fsys != nil {
			c.fs = fsys
		}
	}
}

// WithLoggerProvider overrides the provider selected from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter redirects console provider output.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithMarkdownParser overrides the goldmark renderer.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithSourceLoader overrides the filesystem loader.
func WithSourceLoader(source interfaces.SourceLoader) Option {
	return func(c *Container) {
		if source != nil {
			c.source = source
		}
	}
}

// WithPostService overrides the post service.
func WithPostService(svc posts.Service) Option {
	return func(c *Container) {
		if svc != nil {
			c.postSvc = svc
		}
	}
}

// NewContainer validates cfg and builds the dependency graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		logWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureMarkdown()
	c.configurePosts()

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case runtimeconfig.LoggingProviderNoop:
		c.loggerProvider = noopProvider{}
	case runtimeconfig.LoggingProviderGoLogger:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		level, _ := console.ParseLevel(logCfg.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   c.logWriter,
			MinLevel: &level,
		})
	}
	return nil
}

func (c *Container) configureMarkdown() {
	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(c.Config.Markdown)
	}
	if c.source != nil {
		return
	}
	if c.fs == nil {
		c.fs = os.DirFS(".")
	}
	c.source = markdown.NewLoader(c.fs, markdown.LoaderConfig{
		Root:      c.Config.ContentDir,
		Pattern:   c.Config.Pattern,
		Recursive: c.Config.Recursive,
	}, markdown.WithLoaderLogger(logging.MarkdownLogger(c.loggerProvider)))
}

func (c *Container) configurePosts() {
	c.queryEngine = posts.NewQueryEngine(
		posts.WithAllCategory(c.Config.Query.AllCategory),
		posts.WithThreshold(c.Config.Query.Threshold),
	)

	if c.postSvc != nil {
		return
	}
	c.postSvc = posts.NewService(c.source, c.Config.Collections,
		posts.WithLogger(logging.PostsLogger(c.loggerProvider)),
		posts.WithCatalogOptions(
			posts.WithQueryEngine(c.queryEngine),
			posts.WithRelatedLimit(c.Config.Related.Limit),
		),
	)
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// MarkdownParser returns the HTML renderer.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// SourceLoader returns the collection loader.
func (c *Container) SourceLoader() interfaces.SourceLoader {
	return c.source
}

// QueryEngine returns the engine bound to the configured query settings.
func (c *Container) QueryEngine() *posts.QueryEngine {
	return c.queryEngine
}

// PostService returns the post loading service.
func (c *Container) PostService() posts.Service {
	return c.postSvc
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
