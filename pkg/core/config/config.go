package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete workbench configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Greet   GreetConfig   `toml:"greet" yaml:"greet"`
	Jokes   JokesConfig   `toml:"jokes" yaml:"jokes"`
	Scrape  ScrapeConfig  `toml:"scrape" yaml:"scrape"`
	Notes   NotesConfig   `toml:"notes" yaml:"notes"`
}

// GeneralConfig holds general workbench settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// GreetConfig holds defaults for the greet exercise
type GreetConfig struct {
	Repeat int `toml:"repeat" yaml:"repeat"`
}

// JokesConfig holds the joke API client configuration
type JokesConfig struct {
	BaseURL string   `toml:"base_url" yaml:"base_url"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// ScrapeConfig holds the scraper exercise configuration
type ScrapeConfig struct {
	URL     string   `toml:"url" yaml:"url"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// NotesConfig holds the note store configuration
type NotesConfig struct {
	Path string `toml:"path" yaml:"path"`
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

// UnmarshalYAML parses a duration string from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Load loads configuration from a TOML or YAML file, detected by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MLW_CONFIG environment variable
// or the default search locations
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MLW_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/mlw.toml",
			"./mlw.toml",
			filepath.Join(os.Getenv("HOME"), ".config/meinlernwerk/mlw.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		// No file is fine for a teaching tool: run on defaults
		cfg := &Config{}
		cfg.applyDefaults()
		cfg.expandEnvVars()
		return cfg, nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "meinLERNWERK"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Greet
	if c.Greet.Repeat == 0 {
		c.Greet.Repeat = 1
	}

	// Jokes
	if c.Jokes.BaseURL == "" {
		c.Jokes.BaseURL = "https://official-joke-api.appspot.com"
	}
	if c.Jokes.Timeout.Duration == 0 {
		c.Jokes.Timeout.Duration = 10 * time.Second
	}

	// Scrape
	if c.Scrape.URL == "" {
		c.Scrape.URL = "https://example.com"
	}
	if c.Scrape.Timeout.Duration == 0 {
		c.Scrape.Timeout.Duration = 15 * time.Second
	}

	// Notes
	if c.Notes.Path == "" {
		c.Notes.Path = filepath.Join(c.General.DataDir, "notes.db")
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Notes.Path = os.ExpandEnv(c.Notes.Path)
}
