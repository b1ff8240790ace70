// Package config handles loading and parsing of elasticomp configuration.
//
// Configuration is entirely optional: completion must keep working with a
// missing, empty, or broken config file, so loading degrades to defaults
// instead of failing the request.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names
// (in order of preference).
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Config represents an elasticomp configuration.
type Config struct {
	Binary        string `koanf:"binary"`
	StorageDir    string `koanf:"storage_dir"`
	StorageSuffix string `koanf:"storage_suffix"`
	Timeout       string `koanf:"timeout"`
	CacheTTL      string `koanf:"cache_ttl"`
	LogLevel      string `koanf:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Binary:        "elasticluster",
		StorageDir:    filepath.Join(home, ".elasticluster", "storage"),
		StorageSuffix: ".pickle",
		Timeout:       "3s",
		CacheTTL:      "5m",
		LogLevel:      "warn",
	}
}

// TimeoutDuration parses the subprocess timeout, falling back to the
// default on a malformed value.
func (c *Config) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, 3*time.Second)
}

// CacheTTLDuration parses the template cache TTL, falling back to the
// default on a malformed value.
func (c *Config) CacheTTLDuration() time.Duration {
	return parseDuration(c.CacheTTL, 5*time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Loader handles loading and parsing configuration files.
type Loader struct{}

// New creates a new config loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a configuration file. Missing fields keep their
// defaults.
func (l *Loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// ConfigDir returns the elasticomp configuration directory.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "elasticomp"), nil
}

// FindConfigFile returns the first existing config file under the
// configuration directory, or "" when none exists.
func FindConfigFile() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Resolve loads the config at path, or the discovered config file when
// path is empty, or defaults when nothing is found or loading fails.
// The returned path is "" when defaults are in effect.
func (l *Loader) Resolve(path string) (*Config, string) {
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return Default(), ""
	}

	cfg, err := l.Load(path)
	if err != nil {
		return Default(), ""
	}
	return cfg, path
}
