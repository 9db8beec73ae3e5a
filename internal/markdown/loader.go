package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrCollectionNotFound reports a configured collection without a directory.
var ErrCollectionNotFound = errors.New("markdown loader: collection directory not found")

// LoaderConfig configures how Markdown files are discovered under a root.
type LoaderConfig struct {
	// Root is the slash separated directory inside the filesystem that holds
	// one directory per collection. Empty means the filesystem root.
	Root string
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories of a collection are traversed.
	Recursive bool
}

// Loader turns collection directories into parsed Markdown documents.
type Loader struct {
	fs        fs.FS
	root      string
	pattern   string
	recursive bool
	logger    interfaces.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used for per-file diagnostics.
func WithLoaderLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

var _ interfaces.SourceLoader = (*Loader)(nil)

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig, opts ...LoaderOption) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	l := &Loader{
		fs:        filesystem,
		root:      cleanRoot(cfg.Root),
		pattern:   pattern,
		recursive: cfg.Recursive,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadCollection discovers every matching file under the collection
// directory and returns the parsed documents ordered by path. A missing
// directory yields an error wrapping ErrCollectionNotFound.
func (l *Loader) LoadCollection(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := path.Join(l.root, collection)
	info, err := fs.Stat(l.fs, dir)
	if err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, dir)
		}
		return nil, fmt.Errorf("markdown loader stat %s: %w", dir, err)
	}

	logger := l.logger.WithContext(ctx)
	var docs []*interfaces.Document

	walkErr := fs.WalkDir(l.fs, dir, func(current string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if current != dir && !l.recursive {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !l.matchesPattern(current) {
			return nil
		}

		data, err := fs.ReadFile(l.fs, current)
		if err != nil {
			return fmt.Errorf("markdown loader read %s: %w", current, err)
		}

		doc, err := BuildDocument(current, collection, path.Base(path.Dir(current)), data)
		if err != nil {
			return err
		}
		logging.WithMarkdownContext(logger, current, collection).Debug("markdown.load.file", "bytes", len(data))

		docs = append(docs, doc)
		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	return docs, nil
}

func (l *Loader) matchesPattern(name string) bool {
	pattern := l.pattern
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := name
	if !strings.Contains(pattern, "/") {
		target = path.Base(name)
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func cleanRoot(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return "."
	}
	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	root = strings.TrimPrefix(root, "/")
	if root == "" {
		return "."
	}
	return root
}
