package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sserror "github.com/msto63/smallstring/foundation/core/error"
	sserrors "github.com/msto63/smallstring/foundation/core/errors"
	"github.com/msto63/smallstring/foundation/core/validation"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Pool    PoolConfig    `toml:"pool" yaml:"pool"`
	Inspect InspectConfig `toml:"inspect" yaml:"inspect"`
	Stats   StatsConfig   `toml:"stats" yaml:"stats"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Caller bool   `toml:"caller" yaml:"caller"`
}

// PoolConfig holds heap buffer pool settings
type PoolConfig struct {
	MinClass int `toml:"min_class" yaml:"min_class"`
	MaxClass int `toml:"max_class" yaml:"max_class"`
}

// InspectConfig holds defaults for the inspect command
type InspectConfig struct {
	Threshold int      `toml:"threshold" yaml:"threshold"`
	Texts     []string `toml:"texts" yaml:"texts"`
}

// StatsConfig holds defaults for the stats workload
type StatsConfig struct {
	Count   int      `toml:"count" yaml:"count"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// SupportedThresholds lists the inline thresholds the CLI can instantiate
var SupportedThresholds = []int{2, 4, 8, 16, 24, 25, 32, 64}

// Format represents a configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, sserrors.NotFound(sserrors.ModuleConfig, "Load", path)
	}
	if err != nil {
		return nil, sserrors.NewErrorBuilder(sserrors.ModuleConfig).
			Operation("Load").
			Message("failed to read config").
			Cause(err).
			Code(sserror.CodeConfigError).
			Detail("path", path).
			Build()
	}

	var cfg Config
	format := detectFormat(path)
	if err := parseContent(content, format, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from SSO_CONFIG or a default location.
// Without a file it returns the defaults with env overrides applied.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("SSO_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/sso.toml",
			"./configs/sso.yaml",
			"./sso.toml",
			filepath.Join(os.Getenv("HOME"), ".config/smallstring/sso.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the file format from its extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content in the given format into cfg
func parseContent(content []byte, format Format, cfg *Config) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, cfg)
	default:
		err = toml.Unmarshal(content, cfg)
	}

	if err != nil {
		return sserrors.NewErrorBuilder(sserrors.ModuleConfig).
			Operation("parseContent").
			Messagef("%s parse error", strings.ToUpper(format.String())).
			Cause(err).
			Code(sserror.CodeConfigError).
			Detail("format", format.String()).
			Build()
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "smallstring"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Pool
	if c.Pool.MinClass == 0 {
		c.Pool.MinClass = 32
	}
	if c.Pool.MaxClass == 0 {
		c.Pool.MaxClass = 64 << 10
	}

	// Inspect
	if c.Inspect.Threshold == 0 {
		c.Inspect.Threshold = 24
	}

	// Stats
	if c.Stats.Count == 0 {
		c.Stats.Count = 10000
	}
	if c.Stats.Timeout.Duration == 0 {
		c.Stats.Timeout.Duration = 30 * time.Second
	}
}

// applyEnv applies SSO_* environment overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv("SSO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SSO_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"SSO_POOL_MIN_CLASS", &c.Pool.MinClass},
		{"SSO_POOL_MAX_CLASS", &c.Pool.MaxClass},
		{"SSO_THRESHOLD", &c.Inspect.Threshold},
		{"SSO_STATS_COUNT", &c.Stats.Count},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return sserrors.NewErrorBuilder(sserrors.ModuleConfig).
				Operation("applyEnv").
				Messagef("%s is not an integer", e.name).
				Cause(err).
				Code(sserror.CodeInvalidConfig).
				Detail("variable", e.name).
				Detail("value", v).
				Build()
		}
		*e.target = n
	}

	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	threshold := validation.NewValidatorChain("inspect.threshold").
		Add(validation.Min("inspect.threshold", 1)).
		Add(validation.In("inspect.threshold", SupportedThresholds...)).
		StopOnFirstError(true)

	result := validation.Combine(
		validation.OneOf("log.level", "trace", "debug", "info", "warn", "error", "fatal").Validate(c.Log.Level),
		validation.OneOf("log.format", "json", "text", "console", "logfmt").Validate(c.Log.Format),
		validation.Min("pool.min_class", 1).Validate(c.Pool.MinClass),
		validation.Min("pool.max_class", c.Pool.MinClass).Validate(c.Pool.MaxClass),
		threshold.Validate(c.Inspect.Threshold),
		validation.Min("stats.count", 0).Validate(c.Stats.Count),
		validation.Min("stats.timeout", time.Duration(0)).Validate(c.Stats.Timeout.Duration),
	)

	if err := result.ToError(); err != nil {
		return sserrors.NewErrorBuilder(sserrors.ModuleConfig).
			Operation("Validate").
			Message("invalid configuration").
			Cause(err).
			Code(sserror.CodeInvalidConfig).
			Detail("errors", len(result.Errors)).
			Build()
	}
	return nil
}
