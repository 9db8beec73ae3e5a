package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("posts: post not found")
	ErrParse         = errors.New("posts: frontmatter malformed")
	ErrDuplicateSlug = errors.New("posts: duplicate slug")
)

// NotFoundError captures a slug lookup that matched no post.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Slug) == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: slug=%s", ErrNotFound.Error(), e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ParseError captures a malformed metadata header in one source item.
type ParseError struct {
	SourcePath string
	Err        error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrParse.Error()
	}
	if e.SourcePath != "" {
		return fmt.Sprintf("%s: path=%s: %v", ErrParse.Error(), e.SourcePath, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// DuplicateSlugError captures two source items deriving the same slug.
type DuplicateSlugError struct {
	Slug  string
	Paths []string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	return fmt.Sprintf("%s: slug=%s paths=%s", ErrDuplicateSlug.Error(), e.Slug, strings.Join(e.Paths, ","))
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}
