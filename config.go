package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrConfigInvalid    = runtimeconfig.ErrConfigInvalid
	ErrConfigUnknownKey = runtimeconfig.ErrConfigUnknownKey
	ErrConfigFileRead   = runtimeconfig.ErrConfigFileRead
)

type (
	Config        = runtimeconfig.Config
	QueryConfig   = runtimeconfig.QueryConfig
	RelatedConfig = runtimeconfig.RelatedConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig overlays the TOML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		return Config{}, classify(err)
	}
	return cfg, nil
}
