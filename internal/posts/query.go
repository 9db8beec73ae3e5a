package posts

import (
	"slices"
	"sort"
	"strings"
)

// DefaultAllCategory is the category sentinel that disables filtering.
const DefaultAllCategory = "All"

const (
	FieldTitle    = "title"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

// Match is a free-text search hit.
type Match struct {
	Post  Post    `json:"post"`
	Score float64 `json:"score"`
	Field string  `json:"field"`
}

// QueryEngine filters posts by category and ranks them by fuzzy text
// relevance. It holds configuration only and is safe for concurrent use.
type QueryEngine struct {
	allCategory string
	threshold   float64
}

// QueryOption customises a QueryEngine.
type QueryOption func(*QueryEngine)

// WithAllCategory sets the sentinel category that passes every post.
func WithAllCategory(sentinel string) QueryOption {
	return func(e *QueryEngine) {
		if strings.TrimSpace(sentinel) != "" {
			e.allCategory = sentinel
		}
	}
}

// WithThreshold sets the highest accepted fuzzy score, clamped to [0, 1].
func WithThreshold(threshold float64) QueryOption {
	return func(e *QueryEngine) {
		e.threshold = min(max(threshold, 0), 1)
	}
}

// NewQueryEngine builds an engine with the defaults overridden by opts.
func NewQueryEngine(opts ...QueryOption) *QueryEngine {
	e := &QueryEngine{
		allCategory: DefaultAllCategory,
		threshold:   DefaultThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewQueryEngine()

// Query filters posts with the default engine.
func Query(posts []Post, category, text string) []Post {
	return defaultEngine.Query(posts, category, text)
}

// Query applies the category filter and then the free-text search. With the
// sentinel category and blank text the input is returned as a copy in the
// same order.
func (e *QueryEngine) Query(posts []Post, category, text string) []Post {
	list := e.FilterCategory(posts, category)
	if strings.TrimSpace(text) == "" {
		return list
	}

	matches := e.Search(list, text)
	out := make([]Post, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Post)
	}
	return out
}

// FilterCategory keeps posts whose category key equals the key of the
// requested category. The sentinel and the empty string keep every post.
func (e *QueryEngine) FilterCategory(posts []Post, category string) []Post {
	if category == e.allCategory || strings.TrimSpace(category) == "" {
		return slices.Clone(posts)
	}

	want := CategoryKey(category)
	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		if CategoryKey(post.Category) == want {
			out = append(out, post)
		}
	}
	return out
}

// Search scores every post against text over title, summary and category
// and returns the hits ordered by ascending score. Equal scores keep input
// order. Blank text yields no matches.
func (e *QueryEngine) Search(posts []Post, text string) []Match {
	pattern := fold(strings.TrimSpace(text))
	if pattern == "" {
		return nil
	}

	var matches []Match
	for _, post := range posts {
		if match, ok := e.score(post, pattern); ok {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}

func (e *QueryEngine) score(post Post, pattern string) (Match, bool) {
	fields := [...]struct {
		name  string
		value string
	}{
		{FieldTitle, post.Title},
		{FieldSummary, post.Summary},
		{FieldCategory, NormalizeCategory(post.Category)},
	}

	best := Match{Post: post, Score: 1}
	found := false
	for _, field := range fields {
		score, ok := fuzzyScore(pattern, fold(field.value), e.threshold)
		if !ok || score > e.threshold {
			continue
		}
		if !found || score < best.Score {
			best.Score = score
			best.Field = field.name
			found = true
		}
	}
	return best, found
}
