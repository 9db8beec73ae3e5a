package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrConfigInvalid wraps every validation failure reported by Validate.
var ErrConfigInvalid = errors.New("blog config: configuration is invalid")

// ErrConfigUnknownKey reports keys in a config file that map to no setting.
var ErrConfigUnknownKey = errors.New("blog config: unknown configuration key")

// ErrConfigFileRead reports a config file that could not be read or decoded.
var ErrConfigFileRead = errors.New("blog config: cannot load configuration file")

const (
	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"
	LoggingProviderNoop     = "noop"
)

// Config aggregates the settings of the blog module.
type Config struct {
	// ContentDir is the directory, relative to the source filesystem, that
	// holds one directory per collection.
	ContentDir string `toml:"content_dir"`
	// Collections lists the topic directories enumerated on every load.
	Collections []string `toml:"collections"`
	// Pattern selects article files inside a collection.
	Pattern string `toml:"pattern"`
	// Recursive walks sub-directories of each collection.
	Recursive    bool                    `toml:"recursive"`
	ReadingSpeed int                     `toml:"reading_speed"`
	Query        QueryConfig             `toml:"query"`
	Related      RelatedConfig           `toml:"related"`
	Markdown     interfaces.ParseOptions `toml:"markdown"`
	Logging      LoggingConfig           `toml:"logging"`
}

// QueryConfig tunes category filtering and fuzzy search.
type QueryConfig struct {
	AllCategory string  `toml:"all_category"`
	Threshold   float64 `toml:"threshold"`
}

// RelatedConfig tunes related-post selection.
type RelatedConfig struct {
	Limit int `toml:"limit"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `toml:"provider"`
	Level     string   `toml:"level"`
	Format    string   `toml:"format"`
	AddSource bool     `toml:"add_source"`
	Focus     []string `toml:"focus"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ContentDir:   "posts",
		Collections:  []string{"SystemDesign", "GenAI", "DSA"},
		Pattern:      "*.md",
		Recursive:    true,
		ReadingSpeed: 200,
		Query: QueryConfig{
			AllCategory: "All",
			Threshold:   0.3,
		},
		Related: RelatedConfig{
			Limit: 3,
		},
		Markdown: interfaces.ParseOptions{},
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
	}
}

// Validate performs consistency checks. Failures wrap ErrConfigInvalid and
// the underlying validation.Errors.
func (cfg Config) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.ContentDir, validation.Required),
		validation.Field(&cfg.Collections, validation.Required, validation.Each(validation.Required, validation.By(singleSegment))),
		validation.Field(&cfg.Pattern, validation.Required, validation.By(validGlob)),
		validation.Field(&cfg.ReadingSpeed, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Query),
		validation.Field(&cfg.Related),
		validation.Field(&cfg.Logging),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (q QueryConfig) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AllCategory, validation.Required),
		validation.Field(&q.Threshold, validation.Min(0.0), validation.Max(1.0)),
	)
}

// Validate implements validation.Validatable.
func (r RelatedConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit, validation.Required, validation.Min(1)),
	)
}

// Validate implements validation.Validatable.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Provider, validation.Required, validation.By(oneOf(LoggingProviderConsole, LoggingProviderGoLogger, LoggingProviderNoop))),
		validation.Field(&l.Level, validation.By(oneOf("trace", "debug", "info", "warn", "warning", "error", "fatal"))),
		validation.Field(&l.Format, validation.By(oneOf("json", "console", "pretty"))),
	)
}

// LoadFile overlays the TOML file at filename on DefaultConfig. Keys that
// match no setting are rejected.
func LoadFile(filename string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(filename) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	return Decode(cfg, string(data))
}

// Decode overlays TOML document text on base.
func Decode(base Config, document string) (Config, error) {
	cfg := base
	meta, err := toml.Decode(document, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("%w: %s", ErrConfigUnknownKey, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides settings from BLOG_* variables resolved through lookup.
// A nil lookup reads the process environment.
func (cfg Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup("BLOG_CONTENT_DIR"); ok && v != "" {
		cfg.ContentDir = v
	}
	if v, ok := lookup("BLOG_COLLECTIONS"); ok && v != "" {
		cfg.Collections = splitList(v)
	}
	if v, ok := lookup("BLOG_LOG_LEVEL"); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookup("BLOG_LOG_PROVIDER"); ok && v != "" {
		cfg.Logging.Provider = v
	}
	if v, ok := lookup("BLOG_QUERY_THRESHOLD"); ok && v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: BLOG_QUERY_THRESHOLD: %w", ErrConfigInvalid, err)
		}
		cfg.Query.Threshold = threshold
	}
	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func oneOf(allowed ...string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || slices.Contains(allowed, s) {
			return nil
		}
		return validation.NewError("blog.config.unsupported", "must be one of "+strings.Join(allowed, ", "))
	}
}

func validGlob(value any) error {
	pattern, _ := value.(string)
	if _, err := path.Match(pattern, ""); err != nil {
		return validation.NewError("blog.config.pattern_invalid", "must be a valid glob pattern")
	}
	return nil
}

func singleSegment(value any) error {
	name, _ := value.(string)
	if strings.ContainsAny(name, `/\`) {
		return validation.NewError("blog.config.collection_invalid", "must be a single directory name")
	}
	return nil
}
