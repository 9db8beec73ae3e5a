// Command blog inspects a markdown blog: it lists, searches and renders the
// articles of the configured collections.
package main

import (
	"context"
	"fmt"
	"os"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error categories onto process exit statuses.
func exitCode(err error) int {
	switch {
	case blog.IsNotFound(err), goerrors.IsCategory(err, goerrors.CategoryNotFound):
		return 2
	case blog.IsParseError(err), blog.IsDuplicateSlug(err),
		goerrors.IsCategory(err, goerrors.CategoryValidation),
		goerrors.IsCategory(err, goerrors.CategoryBadInput),
		goerrors.IsCategory(err, goerrors.CategoryConflict):
		return 3
	default:
		return 1
	}
}
