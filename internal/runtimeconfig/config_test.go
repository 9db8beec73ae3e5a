package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.ContentDir != "posts" || len(cfg.Collections) != 3 || cfg.Query.Threshold != 0.3 || cfg.Related.Limit != 3 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestConfigValidate_RequiresCollections(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Collections = nil

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := fieldErrs["Collections"]; !ok {
		t.Fatalf("expected Collections field error, got %v", fieldErrs)
	}
}

func TestConfigValidate_RejectsNestedCollectionPath(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Collections = []string{"DSA", "GenAI/Drafts"}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsThresholdOutOfRange(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Query.Threshold = 1.5

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}

	cfg.Query.Threshold = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected zero threshold to be allowed, got %v", err)
	}
}

func TestConfigValidate_RejectsBadPattern(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Pattern = "[*.md"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}

	cfg.Logging.Format = "JSON"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected case-insensitive format, got %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "blog.toml")
	body := `content_dir = "articles"
collections = ["DSA"]

[query]
threshold = 0.2

[markdown]
safe_mode = true

[logging]
provider = "gologger"
format = "json"
`
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.LoadFile(file)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ContentDir != "articles" || len(cfg.Collections) != 1 || cfg.Collections[0] != "DSA" {
		t.Fatalf("unexpected overlay %+v", cfg)
	}
	if cfg.Query.Threshold != 0.2 || cfg.Query.AllCategory != "All" {
		t.Fatalf("expected partial query overlay, got %+v", cfg.Query)
	}
	if !cfg.Markdown.SafeMode || cfg.Logging.Provider != "gologger" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected nested overlay %+v", cfg)
	}
	if cfg.Pattern != "*.md" || cfg.Related.Limit != 3 {
		t.Fatalf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	_, err := runtimeconfig.Decode(runtimeconfig.DefaultConfig(), "content_directory = \"x\"\n")
	if !errors.Is(err, runtimeconfig.ErrConfigUnknownKey) {
		t.Fatalf("expected ErrConfigUnknownKey, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, runtimeconfig.ErrConfigFileRead) {
		t.Fatalf("expected ErrConfigFileRead, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}

	cfg, err := runtimeconfig.LoadFile("")
	if err != nil || cfg.ContentDir != "posts" {
		t.Fatalf("expected defaults for empty path, got %+v, %v", cfg, err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BLOG_CONTENT_DIR":     "content",
		"BLOG_COLLECTIONS":     "DSA, GenAI ,",
		"BLOG_LOG_LEVEL":       "debug",
		"BLOG_QUERY_THRESHOLD": "0.4",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := runtimeconfig.DefaultConfig().ApplyEnv(lookup)
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.ContentDir != "content" || len(cfg.Collections) != 2 || cfg.Collections[1] != "GenAI" {
		t.Fatalf("unexpected env overlay %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Query.Threshold != 0.4 {
		t.Fatalf("unexpected env overlay %+v", cfg)
	}

	env["BLOG_QUERY_THRESHOLD"] = "high"
	if _, err := runtimeconfig.DefaultConfig().ApplyEnv(lookup); !errors.Is(err, runtimeconfig.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}
