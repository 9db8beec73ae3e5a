package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
)

const (
	listPostsMessageType    = "blog.posts.list"
	searchPostsMessageType  = "blog.posts.search"
	showPostMessageType     = "blog.posts.show"
	relatedPostsMessageType = "blog.posts.related"
	listTaxonomyMessageType = "blog.posts.taxonomy"
)

// Taxonomy kinds accepted by ListTaxonomyCommand.
const (
	TaxonomyCategories = "categories"
	TaxonomyTags       = "tags"
)

// ListPostsCommand selects catalog posts newest first, optionally narrowed to
// one category. The selection is written to Result.
type ListPostsCommand struct {
	Category string        `json:"category,omitempty"`
	Result   *[]posts.Post `json:"-"`
}

// Type implements command.Message.
func (ListPostsCommand) Type() string { return listPostsMessageType }

// Validate ensures a result holder is present.
func (cmd ListPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Result, resultRequired(cmd.Result)),
	)
}

// SearchPostsCommand ranks posts of Category against Text.
type SearchPostsCommand struct {
	Category string         `json:"category,omitempty"`
	Text     string         `json:"text"`
	Result   *[]posts.Match `json:"-"`
}

// Type implements command.Message.
func (SearchPostsCommand) Type() string { return searchPostsMessageType }

// Validate requires non-blank search text.
func (cmd SearchPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Text, validation.By(notBlank("blog.posts.search.text_required", "search text is required"))),
		validation.Field(&cmd.Result, resultRequired(cmd.Result)),
	)
}

// PostView is an article with its outline and, when requested, its HTML.
type PostView struct {
	Post     posts.Post
	Headings []markdown.Heading
	HTML     []byte
}

// ShowPostCommand resolves one post by slug. Render adds the HTML body.
type ShowPostCommand struct {
	Slug   string    `json:"slug"`
	Render bool      `json:"render,omitempty"`
	Result *PostView `json:"-"`
}

// Type implements command.Message.
func (ShowPostCommand) Type() string { return showPostMessageType }

// Validate requires a slug.
func (cmd ShowPostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.By(notBlank("blog.posts.show.slug_required", "slug is required"))),
		validation.Field(&cmd.Result, resultRequired(cmd.Result)),
	)
}

// RelatedPostsCommand selects up to Limit posts related to Slug. Zero uses
// the configured default.
type RelatedPostsCommand struct {
	Slug   string        `json:"slug"`
	Limit  int           `json:"limit,omitempty"`
	Result *[]posts.Post `json:"-"`
}

// Type implements command.Message.
func (RelatedPostsCommand) Type() string { return relatedPostsMessageType }

// Validate requires a slug and a non-negative limit.
func (cmd RelatedPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.By(notBlank("blog.posts.related.slug_required", "slug is required"))),
		validation.Field(&cmd.Limit, validation.Min(0)),
		validation.Field(&cmd.Result, resultRequired(cmd.Result)),
	)
}

// TaxonomyEntry is one category or tag with the number of posts using it.
type TaxonomyEntry struct {
	Name  string `json:"name"`
	Posts int    `json:"posts"`
}

// ListTaxonomyCommand counts posts per category or per tag.
type ListTaxonomyCommand struct {
	Kind   string           `json:"kind"`
	Result *[]TaxonomyEntry `json:"-"`
}

// Type implements command.Message.
func (ListTaxonomyCommand) Type() string { return listTaxonomyMessageType }

// Validate restricts Kind to the known taxonomies.
func (cmd ListTaxonomyCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Kind, validation.Required, validation.In(TaxonomyCategories, TaxonomyTags)),
		validation.Field(&cmd.Result, resultRequired(cmd.Result)),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

// resultRequired rejects a missing result holder. The holder may point at a
// nil slice.
func resultRequired[T any](holder *T) validation.Rule {
	return validation.By(func(any) error {
		if holder == nil {
			return validation.NewError("blog.posts.result_required", "result holder is required")
		}
		return nil
	})
}
