// Package postscmd exposes the catalog read operations as go-command
// handlers for the blog command line.
package postscmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const (
	listOperation     = "posts.list"
	searchOperation   = "posts.search"
	showOperation     = "posts.show"
	relatedOperation  = "posts.related"
	taxonomyOperation = "posts.taxonomy"
)

// Reader is the slice of the blog module the handlers rely on. Errors it
// returns are expected to carry their go-errors category already.
type Reader interface {
	Catalog(ctx context.Context) (*posts.Catalog, error)
	LoadBySlug(ctx context.Context, slug string) (posts.Post, error)
	RelatedTo(ctx context.Context, slug string, limit int) ([]posts.Post, error)
	Search(list []posts.Post, category, text string) []posts.Match
	Render(post posts.Post) ([]byte, error)
}

var (
	_ command.Commander[ListPostsCommand]    = (*commands.Handler[ListPostsCommand])(nil)
	_ command.Commander[SearchPostsCommand]  = (*commands.Handler[SearchPostsCommand])(nil)
	_ command.Commander[ShowPostCommand]     = (*commands.Handler[ShowPostCommand])(nil)
	_ command.Commander[RelatedPostsCommand] = (*commands.Handler[RelatedPostsCommand])(nil)
	_ command.Commander[ListTaxonomyCommand] = (*commands.Handler[ListTaxonomyCommand])(nil)
)

// HandlerSet groups the post command handlers.
type HandlerSet struct {
	List     *commands.Handler[ListPostsCommand]
	Search   *commands.Handler[SearchPostsCommand]
	Show     *commands.Handler[ShowPostCommand]
	Related  *commands.Handler[RelatedPostsCommand]
	Taxonomy *commands.Handler[ListTaxonomyCommand]
}

// NewHandlers binds every post command to reader. logger receives the
// per-command execution entries.
func NewHandlers(reader Reader, logger interfaces.Logger) (*HandlerSet, error) {
	if reader == nil {
		return nil, errors.New("posts command registration: reader is nil")
	}

	return &HandlerSet{
		List: commands.NewHandler[ListPostsCommand](func(ctx context.Context, msg ListPostsCommand) error {
			catalog, err := reader.Catalog(ctx)
			if err != nil {
				return err
			}
			*msg.Result = catalog.Query(msg.Category, "")
			return nil
		},
			commands.WithLogger[ListPostsCommand](logger),
			commands.WithOperation[ListPostsCommand](listOperation),
		),

		Search: commands.NewHandler[SearchPostsCommand](func(ctx context.Context, msg SearchPostsCommand) error {
			catalog, err := reader.Catalog(ctx)
			if err != nil {
				return err
			}
			*msg.Result = reader.Search(catalog.Posts(), msg.Category, msg.Text)
			return nil
		},
			commands.WithLogger[SearchPostsCommand](logger),
			commands.WithOperation[SearchPostsCommand](searchOperation),
		),

		Show: commands.NewHandler[ShowPostCommand](func(ctx context.Context, msg ShowPostCommand) error {
			post, err := reader.LoadBySlug(ctx, msg.Slug)
			if err != nil {
				return err
			}
			view := PostView{
				Post:     post,
				Headings: markdown.ExtractHeadings(post.Content),
			}
			if msg.Render {
				if view.HTML, err = reader.Render(post); err != nil {
					return err
				}
			}
			*msg.Result = view
			return nil
		},
			commands.WithLogger[ShowPostCommand](logger),
			commands.WithOperation[ShowPostCommand](showOperation),
		),

		Related: commands.NewHandler[RelatedPostsCommand](func(ctx context.Context, msg RelatedPostsCommand) error {
			related, err := reader.RelatedTo(ctx, msg.Slug, msg.Limit)
			if err != nil {
				return err
			}
			*msg.Result = related
			return nil
		},
			commands.WithLogger[RelatedPostsCommand](logger),
			commands.WithOperation[RelatedPostsCommand](relatedOperation),
		),

		Taxonomy: commands.NewHandler[ListTaxonomyCommand](func(ctx context.Context, msg ListTaxonomyCommand) error {
			catalog, err := reader.Catalog(ctx)
			if err != nil {
				return err
			}
			*msg.Result = countTaxonomy(catalog, msg.Kind)
			return nil
		},
			commands.WithLogger[ListTaxonomyCommand](logger),
			commands.WithOperation[ListTaxonomyCommand](taxonomyOperation),
		),
	}, nil
}

func countTaxonomy(catalog *posts.Catalog, kind string) []TaxonomyEntry {
	counts := map[string]int{}
	var names []string
	if kind == TaxonomyTags {
		names = catalog.Tags()
		for _, post := range catalog.Posts() {
			for _, tag := range post.Tags {
				counts[tag]++
			}
		}
	} else {
		names = catalog.Categories()
		for _, post := range catalog.Posts() {
			counts[posts.NormalizeCategory(post.Category)]++
		}
	}

	entries := make([]TaxonomyEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, TaxonomyEntry{Name: name, Posts: counts[name]})
	}
	return entries
}
