package blog

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

const (
	TextCodePostNotFound       = "POST_NOT_FOUND"
	TextCodeFrontMatterInvalid = "POST_FRONTMATTER_INVALID"
	TextCodeSlugConflict       = "POST_SLUG_CONFLICT"
	TextCodeConfigInvalid      = "CONFIG_INVALID"
	TextCodeLoadCanceled       = "LOAD_CANCELED"
	TextCodeInternal           = "BLOG_INTERNAL"
)

var (
	ErrNotFound      = posts.ErrNotFound
	ErrParse         = posts.ErrParse
	ErrDuplicateSlug = posts.ErrDuplicateSlug
)

type (
	NotFoundError      = posts.NotFoundError
	ParseError         = posts.ParseError
	DuplicateSlugError = posts.DuplicateSlugError
)

// classify attaches a go-errors category and text code. errors.Is and
// errors.As still reach the original error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}

	switch {
	case errors.Is(err, posts.ErrNotFound):
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "post not found").
			WithTextCode(TextCodePostNotFound)
	case errors.Is(err, posts.ErrParse):
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "post frontmatter is malformed").
			WithTextCode(TextCodeFrontMatterInvalid)
	case errors.Is(err, posts.ErrDuplicateSlug):
		return goerrors.Wrap(err, goerrors.CategoryConflict, "post slug is not unique").
			WithTextCode(TextCodeSlugConflict)
	case errors.Is(err, runtimeconfig.ErrConfigInvalid),
		errors.Is(err, runtimeconfig.ErrConfigUnknownKey),
		errors.Is(err, runtimeconfig.ErrConfigFileRead):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "blog configuration is invalid").
			WithTextCode(TextCodeConfigInvalid)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryInternal, "post load interrupted").
			WithTextCode(TextCodeLoadCanceled)
	default:
		return goerrors.Wrap(err, goerrors.CategoryInternal, "blog operation failed").
			WithTextCode(TextCodeInternal)
	}
}

// IsNotFound reports whether err stems from a slug that matched no post.
func IsNotFound(err error) bool {
	return errors.Is(err, posts.ErrNotFound)
}

// IsParseError reports whether err stems from a malformed metadata header.
func IsParseError(err error) bool {
	return errors.Is(err, posts.ErrParse)
}

// IsDuplicateSlug reports whether err stems from two posts sharing a slug.
func IsDuplicateSlug(err error) bool {
	return errors.Is(err, posts.ErrDuplicateSlug)
}
