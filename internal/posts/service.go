package posts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Service exposes the post loading use-cases. Every call rebuilds the
// snapshot from the source.
type Service interface {
	LoadAll(ctx context.Context) ([]Post, error)
	LoadBySlug(ctx context.Context, slug string) (Post, error)
	Catalog(ctx context.Context) (*Catalog, error)
}

// DefaultCollections lists the topic collections enumerated when none are configured.
func DefaultCollections() []string {
	return []string{"SystemDesign", "GenAI", "DSA"}
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCatalogOptions forwards options to every catalog the service builds.
func WithCatalogOptions(opts ...CatalogOption) ServiceOption {
	return func(s *service) {
		s.catalogOptions = append(s.catalogOptions, opts...)
	}
}

// WithClock overrides the clock used to time loads.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	source         interfaces.SourceLoader
	collections    []string
	catalogOptions []CatalogOption
	logger         interfaces.Logger
	now            func() time.Time
}

// NewService wires a post service over source. Empty collections fall back
// to DefaultCollections.
func NewService(source interfaces.SourceLoader, collections []string, opts ...ServiceOption) Service {
	names := make([]string, 0, len(collections))
	for _, name := range collections {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = DefaultCollections()
	}

	s := &service{
		source:      source,
		collections: names,
		logger:      logging.NoOp(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll returns every post ordered by publish date descending.
func (s *service) LoadAll(ctx context.Context) ([]Post, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Posts(), nil
}

// LoadBySlug loads the full set and returns the post carrying slug.
func (s *service) LoadBySlug(ctx context.Context, slug string) (Post, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return Post{}, err
	}
	post, err := catalog.Get(slug)
	if err != nil {
		logging.WithPostContext(s.logger, slug).Debug("posts.lookup.miss")
		return Post{}, err
	}
	return post, nil
}

// Catalog builds a fresh snapshot from every configured collection.
func (s *service) Catalog(ctx context.Context) (*Catalog, error) {
	started := s.now()
	logger := s.logger.WithContext(ctx)

	var loaded []Post
	for _, collection := range s.collections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		docs, err := s.source.LoadCollection(ctx, collection)
		if err != nil {
			if errors.Is(err, markdown.ErrCollectionNotFound) {
				logger.Warn("posts.collection.missing", "collection", collection)
				continue
			}
			return nil, translateLoadError(err)
		}

		for _, doc := range docs {
			loaded = append(loaded, postFromDocument(logger, doc))
		}
	}

	catalog, err := NewCatalog(loaded, s.catalogOptions...)
	if err != nil {
		var dup *DuplicateSlugError
		if errors.As(err, &dup) {
			logging.WithPostContext(logger, dup.Slug).Error("posts.slug.duplicate", "paths", dup.Paths)
		}
		return nil, err
	}

	logger.Info("posts.load.completed",
		"posts", catalog.Len(),
		"collections", len(s.collections),
		"duration", s.now().Sub(started),
	)
	return catalog, nil
}

func postFromDocument(logger interfaces.Logger, doc *interfaces.Document) Post {
	fm := doc.FrontMatter
	slug := DeriveSlug(doc.FilePath)
	post := newPost(slug, DeriveCategory(doc.Directory), doc.Body, PostMetadata{
		Title:   fm.Title,
		Summary: fm.Summary,
		Date:    fm.Date,
		DateRaw: fm.DateRaw,
		Tags:    fm.Tags,
		Extra:   fm.Custom,
	})
	post.Collection = doc.Collection
	post.SourcePath = doc.FilePath
	post.Checksum = append([]byte(nil), doc.Checksum...)

	logger = logging.WithPostContext(logger, slug)
	if fm.DateRaw != "" && !fm.HasDate() {
		logger.Warn("posts.date.unparsable", "date", fm.DateRaw, "source_path", doc.FilePath)
	}
	if !IsURLSafeSlug(slug) {
		logger.Warn("posts.slug.unsafe", "source_path", doc.FilePath)
	}
	return post
}

func translateLoadError(err error) error {
	var fmErr *markdown.FrontMatterError
	if errors.As(err, &fmErr) {
		return &ParseError{SourcePath: fmErr.Path, Err: fmErr.Err}
	}
	return err
}
