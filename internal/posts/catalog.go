package posts

import (
	"slices"
	"sort"
)

// Catalog is one immutable snapshot of every loaded post, ordered by publish
// date descending. Posts without a date follow the dated ones. Catalog values
// are safe for concurrent reads.
type Catalog struct {
	posts        []Post
	bySlug       map[string]int
	engine       *QueryEngine
	relatedLimit int
}

// CatalogOption customises a Catalog.
type CatalogOption func(*Catalog)

// WithQueryEngine binds the engine used by Catalog.Query.
func WithQueryEngine(engine *QueryEngine) CatalogOption {
	return func(c *Catalog) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithRelatedLimit sets the default limit used by Catalog.Related.
func WithRelatedLimit(limit int) CatalogOption {
	return func(c *Catalog) {
		if limit > 0 {
			c.relatedLimit = limit
		}
	}
}

// NewCatalog orders posts and indexes them by slug. It fails with a
// *DuplicateSlugError when two posts share a slug.
func NewCatalog(posts []Post, opts ...CatalogOption) (*Catalog, error) {
	ordered := slices.Clone(posts)
	SortByDate(ordered)

	index := make(map[string]int, len(ordered))
	for i, post := range ordered {
		if prev, ok := index[post.Slug]; ok {
			return nil, &DuplicateSlugError{
				Slug:  post.Slug,
				Paths: []string{ordered[prev].SourcePath, post.SourcePath},
			}
		}
		index[post.Slug] = i
	}

	c := &Catalog{
		posts:        ordered,
		bySlug:       index,
		engine:       defaultEngine,
		relatedLimit: DefaultRelatedLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SortByDate orders posts newest first in place. Undated posts move to the
// end and equal dates keep their relative order.
func SortByDate(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch {
		case a.HasDate() && b.HasDate():
			return a.Date.After(b.Date)
		default:
			return a.HasDate() && !b.HasDate()
		}
	})
}

// Posts returns a copy of the ordered post list.
func (c *Catalog) Posts() []Post {
	return slices.Clone(c.posts)
}

// Len reports the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Get resolves a slug to its post.
func (c *Catalog) Get(slug string) (Post, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, &NotFoundError{Slug: slug}
	}
	return c.posts[i], nil
}

// Categories lists the distinct normalized categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, post := range c.posts {
		category := NormalizeCategory(post.Category)
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

// Tags lists the distinct tags across all posts, sorted.
func (c *Catalog) Tags() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, post := range c.posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// Query filters the catalog with the bound engine.
func (c *Catalog) Query(category, text string) []Post {
	return c.engine.Query(c.posts, category, text)
}

// Search ranks the catalog against text with the bound engine.
func (c *Catalog) Search(text string) []Match {
	return c.engine.Search(c.posts, text)
}

// Related selects posts related to current. A non-positive limit uses the
// catalog default.
func (c *Catalog) Related(current Post, limit int) []Post {
	if limit <= 0 {
		limit = c.relatedLimit
	}
	return Related(c.posts, current, limit)
}
