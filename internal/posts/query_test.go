package posts

import "testing"

func TestQueryAllWithEmptyTextIsIdentity(t *testing.T) {
	list := samplePosts(t)
	got := Query(list, "All", "")
	if !equalStrings(slugs(got), slugs(list)) {
		t.Fatalf("expected identity, got %v", slugs(got))
	}

	got = Query(list, DefaultAllCategory, "   ")
	if !equalStrings(slugs(got), slugs(list)) {
		t.Fatalf("expected whitespace text to pass through, got %v", slugs(got))
	}
}

func TestQueryCategoryFilter(t *testing.T) {
	list := samplePosts(t)

	got := Query(list, "GenAI", "")
	if want := []string{"rag-basics", "prompting"}; !equalStrings(slugs(got), want) {
		t.Fatalf("expected gen-ai subset %v, got %v", want, slugs(got))
	}
	for _, post := range got {
		if NormalizeCategory(post.Category) != "gen-ai" {
			t.Fatalf("unexpected category %q", post.Category)
		}
	}

	if again := Query(list, "gen-ai", ""); !equalStrings(slugs(again), slugs(got)) {
		t.Fatalf("expected derived category to select the same subset, got %v", slugs(again))
	}

	got = Query(list, "System Design", "")
	if want := []string{"load-balancing"}; !equalStrings(slugs(got), want) {
		t.Fatalf("expected spaced category to normalize, got %v", slugs(got))
	}
}

func TestQueryFuzzyTitle(t *testing.T) {
	got := Query(samplePosts(t), "All", "Load Balancng")
	if len(got) == 0 || got[0].Slug != "load-balancing" {
		t.Fatalf("expected load-balancing first, got %v", slugs(got))
	}
}

func TestQueryComposesCategoryThenText(t *testing.T) {
	list := samplePosts(t)
	if got := Query(list, "dsa", "Load Balancing"); len(got) != 0 {
		t.Fatalf("expected category filter to exclude match, got %v", slugs(got))
	}
	if got := Query(list, "gen-ai", "prompt"); len(got) != 1 || got[0].Slug != "prompting" {
		t.Fatalf("expected prompting, got %v", slugs(got))
	}
}

func TestQueryRejectsUnrelatedText(t *testing.T) {
	if got := Query(samplePosts(t), "All", "kubernetes"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", slugs(got))
	}
}

func TestSearchRanksByScore(t *testing.T) {
	list := []Post{
		{Slug: "coaching", Title: "Coaching Engineers"},
		{Slug: "caching", Title: "Caching Patterns"},
	}

	matches := NewQueryEngine().Search(list, "caching")
	if len(matches) != 2 {
		t.Fatalf("expected two matches, got %+v", matches)
	}
	if matches[0].Post.Slug != "caching" || matches[0].Score != 0 {
		t.Fatalf("expected exact match first, got %+v", matches[0])
	}
	if matches[1].Post.Slug != "coaching" || matches[1].Score <= 0 || matches[1].Score > DefaultThreshold {
		t.Fatalf("unexpected fuzzy match %+v", matches[1])
	}
	if matches[0].Field != FieldTitle {
		t.Fatalf("expected title field, got %q", matches[0].Field)
	}
}

func TestSearchMatchesSummaryAndCategory(t *testing.T) {
	list := samplePosts(t)

	matches := NewQueryEngine().Search(list, "retrieval")
	if len(matches) != 1 || matches[0].Post.Slug != "rag-basics" || matches[0].Field != FieldSummary {
		t.Fatalf("expected summary match on rag-basics, got %+v", matches)
	}

	matches = NewQueryEngine().Search(list, "system design")
	if len(matches) == 0 || matches[0].Post.Slug != "load-balancing" {
		t.Fatalf("expected category match on load-balancing, got %+v", matches)
	}
}

func TestSearchTiesKeepInputOrder(t *testing.T) {
	list := []Post{
		{Slug: "b", Title: "Graphs"},
		{Slug: "a", Title: "Graphs"},
	}
	got := Query(list, "All", "graphs")
	if want := []string{"b", "a"}; !equalStrings(slugs(got), want) {
		t.Fatalf("expected stable order %v, got %v", want, slugs(got))
	}
}

func TestQueryEngineOptions(t *testing.T) {
	engine := NewQueryEngine(WithAllCategory("*"), WithThreshold(0))
	list := samplePosts(t)

	if got := engine.Query(list, "*", ""); len(got) != len(list) {
		t.Fatalf("expected custom sentinel to pass all posts, got %v", slugs(got))
	}
	if got := engine.Query(list, "*", "Load Balancng"); len(got) != 0 {
		t.Fatalf("expected zero threshold to require exact substrings, got %v", slugs(got))
	}
	if got := engine.Query(list, "*", "binary search"); len(got) != 1 {
		t.Fatalf("expected exact substring to match, got %v", slugs(got))
	}
}

func TestFuzzyScore(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		ok      bool
	}{
		{"load", "load balancing", true},
		{"balancng", "load balancing", true},
		{"xyz", "load balancing", false},
		{"", "anything", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		score, ok := fuzzyScore(tc.pattern, tc.text, DefaultThreshold)
		if ok != tc.ok {
			t.Fatalf("fuzzyScore(%q, %q) ok=%v score=%v, want ok=%v", tc.pattern, tc.text, ok, score, tc.ok)
		}
		if ok && (score < 0 || score > DefaultThreshold) {
			t.Fatalf("fuzzyScore(%q, %q) score out of range: %v", tc.pattern, tc.text, score)
		}
	}
}
