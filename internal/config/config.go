package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for goadf
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Inspect InspectConfig `yaml:"inspect"`
	Log     LogConfig     `yaml:"log"`
	Dev     DevConfig     `yaml:"dev"`
}

// InputConfig controls where the document is read from
type InputConfig struct {
	// Path is a gjson path selecting the ADF value inside a larger payload,
	// e.g. "fields.description" for a Jira issue. Empty means the whole input.
	Path string `yaml:"path"`
}

// OutputConfig controls how documents are written back out
type OutputConfig struct {
	Indent     string `yaml:"indent"`
	EscapeHTML bool   `yaml:"escape_html"`
}

// InspectConfig controls the statistics report
type InspectConfig struct {
	TitleCase  bool              `yaml:"title_case"`
	KindLabels map[string]string `yaml:"kind_labels"`
	Hide       []HidePattern     `yaml:"hide"`
}

// HidePattern drops matching kinds from the report
type HidePattern struct {
	Pattern string `yaml:"pattern"`
	Comment string `yaml:"comment,omitempty"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// LogConfig controls CLI logging
type LogConfig struct {
	Level string `yaml:"level"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	// Debug raises logging to debug, Verbose to info
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent:     "",
			EscapeHTML: false,
		},
		Inspect: InspectConfig{
			TitleCase:  true,
			KindLabels: make(map[string]string),
			Hide:       []HidePattern{},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that YAML decoding cannot and compiles hide patterns.
func (c *Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return errors.Wrapf(err, "invalid log level %q", c.Log.Level)
		}
	}
	return c.compilePatterns()
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".goadf.yml", ".goadf.yaml", "goadf.yml", "goadf.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

func (c *Config) compilePatterns() error {
	for i := range c.Inspect.Hide {
		hide := &c.Inspect.Hide[i]
		regex, err := regexp.Compile(hide.Pattern)
		if err != nil {
			return errors.Wrapf(err, "invalid hide pattern '%s'", hide.Pattern)
		}
		hide.regex = regex
	}
	return nil
}

// MatchesKind checks if this pattern matches the given discriminator
func (hp *HidePattern) MatchesKind(kind string) bool {
	if hp.regex == nil {
		// Try to compile if not already compiled (fallback)
		regex, err := regexp.Compile(hp.Pattern)
		if err != nil {
			return false
		}
		hp.regex = regex
	}
	return hp.regex.MatchString(kind)
}

// IsHidden reports whether a kind is excluded from the inspect report
func (c *Config) IsHidden(kind string) bool {
	for i := range c.Inspect.Hide {
		if c.Inspect.Hide[i].MatchesKind(kind) {
			return true
		}
	}
	return false
}

// KindLabel returns the display label for a node or mark discriminator
func (c *Config) KindLabel(kind string) string {
	if label, exists := c.Inspect.KindLabels[kind]; exists {
		return label
	}

	if c.Inspect.TitleCase {
		return strcase.ToCamel(kind)
	}

	return kind
}

// LogLevel returns the configured level, falling back to warn
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	if c.Dev.Debug && level < logrus.DebugLevel {
		return logrus.DebugLevel
	}
	if c.Dev.Verbose && level < logrus.InfoLevel {
		return logrus.InfoLevel
	}
	return level
}

// MergeConfigs merges CLI overrides into a base config
// Non-empty values from override take precedence over base values
func MergeConfigs(base, override *Config) *Config {
	merged := *base

	if override.Input.Path != "" {
		merged.Input.Path = override.Input.Path
	}
	if override.Output.Indent != "" {
		merged.Output.Indent = override.Output.Indent
	}
	if override.Log.Level != "" {
		merged.Log.Level = override.Log.Level
	}

	// Booleans can only be switched on from the command line
	merged.Output.EscapeHTML = base.Output.EscapeHTML || override.Output.EscapeHTML
	merged.Dev.Debug = base.Dev.Debug || override.Dev.Debug
	merged.Dev.Verbose = base.Dev.Verbose || override.Dev.Verbose

	return &merged
}

// CLIOverrides holds the flag values that may override the config file
type CLIOverrides struct {
	Path       string
	Indent     string
	EscapeHTML bool
	LogLevel   string
	Debug      bool
	Verbose    bool
}

// LoadConfigWithCLI loads config with CLI argument precedence:
// CLI > config file > defaults
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	merged := MergeConfigs(cfg, &Config{
		Input:  InputConfig{Path: cli.Path},
		Output: OutputConfig{Indent: cli.Indent, EscapeHTML: cli.EscapeHTML},
		Log:    LogConfig{Level: cli.LogLevel},
		Dev:    DevConfig{Debug: cli.Debug, Verbose: cli.Verbose},
	})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
