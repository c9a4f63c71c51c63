package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOrigin        = "https://freelancehunt.com"
	DefaultBaseURL       = "https://freelancehunt.com/projects/skill/veb-programmirovanie/99.html"
	DefaultLastPageQuery = "?page=99"
	DefaultUserAgent     = "Mozilla/5.0"
)

// Config represents the scraper configuration
type Config struct {
	Site struct {
		Origin        string `yaml:"origin"`
		BaseURL       string `yaml:"base_url"`
		LastPageQuery string `yaml:"last_page_query"`
		UserAgent     string `yaml:"user_agent"`
	} `yaml:"site"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig loads configuration from a YAML file.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills empty fields, so an explicit empty value in YAML
// does not leave the scraper without a URL
func (c *Config) applyDefaults() {
	if c.Site.Origin == "" {
		c.Site.Origin = DefaultOrigin
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = DefaultBaseURL
	}
	if c.Site.LastPageQuery == "" {
		c.Site.LastPageQuery = DefaultLastPageQuery
	}
	if c.Site.UserAgent == "" {
		c.Site.UserAgent = DefaultUserAgent
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
