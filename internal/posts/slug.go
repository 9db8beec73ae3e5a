package posts

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"
)

// DeriveSlug returns the base name of a source path with its extension removed.
func DeriveSlug(sourcePath string) string {
	base := path.Base(strings.ReplaceAll(sourcePath, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// IsURLSafeSlug reports whether value satisfies the default slug rules.
// Slugs failing this check still load; callers log them.
func IsURLSafeSlug(value string) bool {
	return slug.IsValid(value)
}
