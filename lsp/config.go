package lsp

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/scopepath/compile"

	"github.com/goccy/go-yaml"
)

// Config is the language server configuration file.
type Config struct {
	// Keywords replaces the keywords templates may use.
	Keywords []string `yaml:"keywords"`

	// Completion configures completion suggestions.
	Completion *CompletionConfig `yaml:"completion"`
}

type CompletionConfig struct {
	// Names offers the names used elsewhere in the document as well as
	// those of the enclosing blocks.
	Names bool `yaml:"names"`

	// Max limits the number of items returned. Zero means no limit.
	Max int `yaml:"max"`
}

// LoadConfig loads a YAML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Keywords: append([]string(nil), compile.DefaultKeywords...),
		Completion: &CompletionConfig{
			Names: true,
			Max:   100,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for _, kw := range c.Keywords {
		if !strings.HasPrefix(kw, "@") || len(kw) == 1 {
			return fmt.Errorf("invalid keyword %q: must be @ followed by a name", kw)
		}
	}
	if c.Completion != nil && c.Completion.Max < 0 {
		return fmt.Errorf("completion max must not be negative, got %d", c.Completion.Max)
	}
	return nil
}
