// Package config loads settings for the solid CLI from YAML and the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when SOLID_CONFIG is unset.
const DefaultFile = "solid.yaml"

// Config is the CLI configuration.
type Config struct {
	// Source is the file the config was read from, empty when none was found.
	Source string `yaml:"-"`

	LogLevel string `yaml:"log"`
	Language string `yaml:"language"`
	Format   string `yaml:"format"`

	// Vocabularies are extra languages: language -> word -> translation.
	Vocabularies map[string]map[string]string `yaml:"vocabularies"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		LogLevel: "error",
		Language: "English",
		Format:   "text",
	}
}

// Path returns the config file to read: $SOLID_CONFIG, else DefaultFile if it
// exists, else "".
func Path() string {
	if p := os.Getenv("SOLID_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load reads path (if not empty) over Defaults, then applies the SOLID_LOG,
// SOLID_LANGUAGE and SOLID_FORMAT environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, err
		}
		cfg.Source = path
		log.WithField("path", path).Debug("config: loaded")
	}

	cfg.LogLevel = getenv("SOLID_LOG", cfg.LogLevel)
	cfg.Language = getenv("SOLID_LANGUAGE", cfg.Language)
	cfg.Format = getenv("SOLID_FORMAT", cfg.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	switch c.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, errors.New("format must be text or json, got "+strconv.Quote(c.Format)))
	}
	if strings.TrimSpace(c.Language) == "" {
		result = multierror.Append(result, errors.New("language must not be empty"))
	}
	for lang, words := range c.Vocabularies {
		if strings.TrimSpace(lang) == "" {
			result = multierror.Append(result, errors.New("vocabulary with empty language name"))
		}
		if len(words) == 0 {
			result = multierror.Append(result, errors.New("vocabulary "+strconv.Quote(lang)+" is empty"))
		}
	}
	return result.ErrorOrNil()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
