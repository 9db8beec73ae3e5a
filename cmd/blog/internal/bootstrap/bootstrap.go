package bootstrap

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures configuration for CLI bootstraps. Non-empty fields
// override the config file and BLOG_* environment values.
type Options struct {
	ConfigPath     string
	ContentDir     string
	Collections    []string
	LogLevel       string
	LogFormat      string
	LogWriter      io.Writer
	FS             fs.FS
	LoggerProvider interfaces.LoggerProvider
	// Env resolves environment variables; nil reads the process environment.
	Env func(string) (string, bool)
}

// Module wraps the blog module, its command handlers and the CLI logger.
type Module struct {
	Module   *blog.Module
	Commands *postscmd.HandlerSet
	Logger   interfaces.Logger
}

// BuildModule constructs a blog module for command line use.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := blog.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg, err = cfg.ApplyEnv(opts.Env); err != nil {
		return nil, err
	}

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.ContentDir = dir
	}
	if len(opts.Collections) > 0 {
		cfg.Collections = cloneStrings(opts.Collections)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
		if cfg.Logging.Provider == runtimeconfig.LoggingProviderConsole {
			cfg.Logging.Provider = runtimeconfig.LoggingProviderGoLogger
		}
	}

	var moduleOpts []blog.Option
	fsys := opts.FS
	if fsys == nil {
		root, err := filepath.Abs(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("resolve content directory %q: %w", cfg.ContentDir, err)
		}
		fsys = os.DirFS(root)
		cfg.ContentDir = "."
	}
	moduleOpts = append(moduleOpts, blog.WithFS(fsys))
	if opts.LogWriter != nil {
		moduleOpts = append(moduleOpts, blog.WithLogWriter(opts.LogWriter))
	}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, blog.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, moduleOpts...)
	if err != nil {
		return nil, err
	}

	handlers, err := postscmd.NewHandlers(module, logging.CommandsLogger(module.LoggerProvider()))
	if err != nil {
		return nil, err
	}

	return &Module{
		Module:   module,
		Commands: handlers,
		Logger:   logging.CLILogger(module.LoggerProvider()),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
