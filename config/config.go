package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cors struct {
		AllowedOrigin string `yaml:"allowedOrigin"`
	} `yaml:"cors"`

	Cognito struct {
		Region string `yaml:"region"`
	} `yaml:"cognito"`

	TMDB struct {
		APIKey  string `yaml:"apiKey"`
		BaseURL string `yaml:"baseUrl"`
	} `yaml:"tmdb"`

	Database struct {
		URI               string `yaml:"uri"`
		ReviewsCollection string `yaml:"reviewsCollection"`
	} `yaml:"database"`
}

// LoadConfig reads the configuration file and validates required fields
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.ReviewsCollection == "" {
		c.Database.ReviewsCollection = "reviews"
	}
}

// Validate fails fast when a required value is absent
func (c *Config) Validate() error {
	var missing []string
	if c.Database.URI == "" {
		missing = append(missing, "database.uri")
	}
	if c.TMDB.APIKey == "" {
		missing = append(missing, "tmdb.apiKey")
	}
	if c.Cognito.Region == "" {
		missing = append(missing, "cognito.region")
	}
	if c.Cors.AllowedOrigin == "" {
		missing = append(missing, "cors.allowedOrigin")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config values: %s", strings.Join(missing, ", "))
	}
	return nil
}
