package posts

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return ts
}

func samplePosts(t *testing.T) []Post {
	t.Helper()
	return []Post{
		{Slug: "load-balancing", Category: "system-design", Title: "Load Balancing Strategies", Summary: "Round robin and friends", Date: date(t, "2024-03-01"), Tags: []string{"networking", "scaling"}},
		{Slug: "rag-basics", Category: "gen-ai", Title: "RAG Basics", Summary: "Retrieval augmented generation", Date: date(t, "2024-05-10"), Tags: []string{"llm"}},
		{Slug: "binary-search", Category: "dsa", Title: "Binary Search", Summary: "Halving the search space", Date: date(t, "2023-11-20"), Tags: []string{"arrays"}},
		{Slug: "prompting", Category: "gen-ai", Title: "Prompt Patterns", Summary: "Structuring prompts", Date: date(t, "2024-01-15"), Tags: []string{"llm", "scaling"}},
	}
}

func slugs(list []Post) []string {
	out := make([]string, 0, len(list))
	for _, post := range list {
		out = append(out, post.Slug)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeriveCategory(t *testing.T) {
	cases := map[string]string{
		"SystemDesign":       "system-design",
		"GenAI":              "gen-ai",
		"DSA":                "dsa",
		"dsa":                "dsa",
		"MachineLearningOps": "machine-learning-ops",
		"":                   "",
	}
	for input, want := range cases {
		if got := DeriveCategory(input); got != want {
			t.Fatalf("DeriveCategory(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"System Design": "system-design",
		"system-design": "system-design",
		"Gen \t AI":     "gen-ai",
		"GenAI":         "genai",
		"":              "",
	}
	for input, want := range cases {
		if got := NormalizeCategory(input); got != want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCategoryKey(t *testing.T) {
	for _, input := range []string{"GenAI", "gen-ai", "Gen AI", " gen-ai "} {
		if got := CategoryKey(input); got != "gen-ai" {
			t.Fatalf("CategoryKey(%q) = %q, want gen-ai", input, got)
		}
	}
}

func TestDeriveSlug(t *testing.T) {
	cases := map[string]string{
		"posts/SystemDesign/load-balancing.md": "load-balancing",
		"posts\\DSA\\heaps.markdown":           "heaps",
		"README":                               "README",
	}
	for input, want := range cases {
		if got := DeriveSlug(input); got != want {
			t.Fatalf("DeriveSlug(%q) = %q, want %q", input, got, want)
		}
	}
	if !IsURLSafeSlug("load-balancing") {
		t.Fatalf("expected load-balancing to be URL safe")
	}
	if IsURLSafeSlug("Load Balancing!") {
		t.Fatalf("expected spaced slug to be rejected")
	}
}

func TestNewPostDerivedFieldsWin(t *testing.T) {
	post := newPost("derived", "dsa", "body", PostMetadata{
		Title: "Title",
		Extra: map[string]any{
			"slug":     "from-header",
			"Category": "other",
			"content":  "ignored",
			"author":   "ada",
		},
	})

	if post.Slug != "derived" || post.Category != "dsa" || post.Content != "body" {
		t.Fatalf("derived fields overridden: %+v", post)
	}
	if _, ok := post.Extra["slug"]; ok {
		t.Fatalf("expected reserved key slug to be dropped from extra")
	}
	if _, ok := post.Extra["Category"]; ok {
		t.Fatalf("expected reserved key Category to be dropped from extra")
	}
	if post.Extra["author"] != "ada" {
		t.Fatalf("expected custom key to survive, got %v", post.Extra)
	}
}

func TestReadingTime(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{650, 4},
	}
	for _, tc := range cases {
		content := ""
		for i := 0; i < tc.words; i++ {
			content += "word "
		}
		post := Post{Content: content}
		if got := post.ReadingTime(200); got != tc.want {
			t.Fatalf("ReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
	if got := (Post{Content: "a b c"}).ReadingTime(0); got != 1 {
		t.Fatalf("expected default speed fallback, got %d", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := (Post{Category: "system-design"}).CategoryLabel(); got != "System Design" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := CategoryLabel("dsa"); got != "Dsa" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestNewCatalogOrdersByDateDescending(t *testing.T) {
	list := samplePosts(t)
	list = append(list,
		Post{Slug: "undated-a", Category: "dsa"},
		Post{Slug: "same-day", Category: "dsa", Date: date(t, "2024-03-01")},
		Post{Slug: "undated-b", Category: "dsa"},
	)

	catalog, err := NewCatalog(list)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	want := []string{"rag-basics", "load-balancing", "same-day", "prompting", "binary-search", "undated-a", "undated-b"}
	if got := slugs(catalog.Posts()); !equalStrings(got, want) {
		t.Fatalf("unexpected order %v, want %v", got, want)
	}
	if catalog.Len() != len(want) {
		t.Fatalf("expected %d posts, got %d", len(want), catalog.Len())
	}
}

func TestNewCatalogDoesNotMutateInput(t *testing.T) {
	list := samplePosts(t)
	before := slugs(list)
	if _, err := NewCatalog(list); err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if !equalStrings(slugs(list), before) {
		t.Fatalf("input reordered: %v", slugs(list))
	}
}

func TestNewCatalogRejectsDuplicateSlugs(t *testing.T) {
	list := []Post{
		{Slug: "heaps", SourcePath: "posts/DSA/heaps.md"},
		{Slug: "heaps", SourcePath: "posts/SystemDesign/heaps.md"},
	}
	_, err := NewCatalog(list)
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
	var dup *DuplicateSlugError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateSlugError, got %T", err)
	}
	if dup.Slug != "heaps" || len(dup.Paths) != 2 {
		t.Fatalf("unexpected duplicate details %+v", dup)
	}
}

func TestCatalogGet(t *testing.T) {
	catalog, err := NewCatalog(samplePosts(t))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	post, err := catalog.Get("binary-search")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if post.Title != "Binary Search" {
		t.Fatalf("unexpected post %+v", post)
	}

	_, err = catalog.Get("missing-slug")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Slug != "missing-slug" {
		t.Fatalf("expected NotFoundError for missing-slug, got %v", err)
	}
}

func TestCatalogCategoriesAndTags(t *testing.T) {
	catalog, err := NewCatalog(samplePosts(t))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if got, want := catalog.Categories(), []string{"gen-ai", "system-design", "dsa"}; !equalStrings(got, want) {
		t.Fatalf("categories %v, want %v", got, want)
	}
	if got, want := catalog.Tags(), []string{"arrays", "llm", "networking", "scaling"}; !equalStrings(got, want) {
		t.Fatalf("tags %v, want %v", got, want)
	}
}

func TestCatalogPostsReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog(samplePosts(t))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	list := catalog.Posts()
	list[0].Slug = "changed"
	if catalog.Posts()[0].Slug == "changed" {
		t.Fatalf("catalog exposed its backing slice")
	}
}
