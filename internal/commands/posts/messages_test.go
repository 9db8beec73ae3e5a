package postscmd

import (
	"testing"

	"github.com/goliatone/go-blog/internal/posts"
)

func TestShowPostCommandValidateRequiresSlug(t *testing.T) {
	var view PostView
	cmd := ShowPostCommand{Slug: "  ", Result: &view}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when slug is blank")
	}

	cmd.Slug = "heaps"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with slug: %v", err)
	}

	cmd.Result = nil
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error without a result holder")
	}
}

func TestSearchPostsCommandValidateRequiresText(t *testing.T) {
	var matches []posts.Match
	cmd := SearchPostsCommand{Result: &matches}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when text is missing")
	}

	cmd.Text = "heap"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with text: %v", err)
	}
}

func TestRelatedPostsCommandValidateLimit(t *testing.T) {
	var related []posts.Post
	cmd := RelatedPostsCommand{Slug: "heaps", Limit: -1, Result: &related}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for negative limit")
	}

	cmd.Limit = 0
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with default limit: %v", err)
	}
}

func TestListTaxonomyCommandValidateKind(t *testing.T) {
	var entries []TaxonomyEntry
	cmd := ListTaxonomyCommand{Kind: "authors", Result: &entries}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for unknown kind")
	}

	for _, kind := range []string{TaxonomyCategories, TaxonomyTags} {
		cmd.Kind = kind
		if err := cmd.Validate(); err != nil {
			t.Fatalf("unexpected error for %s: %v", kind, err)
		}
	}
}

func TestListPostsCommandAcceptsNilSliceHolder(t *testing.T) {
	var list []posts.Post
	if err := (ListPostsCommand{Result: &list}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (ListPostsCommand{}).Validate(); err == nil {
		t.Fatal("expected error without a result holder")
	}
}
