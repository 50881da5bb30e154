package govuk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the library-wide options usually loaded from a YAML file.
type Config struct {
	// AcceptMonthNamesInDateInputs lets the month box of a date input accept
	// English month names such as "jan" or "March".
	AcceptMonthNamesInDateInputs bool `yaml:"acceptMonthNamesInDateInputs" json:"acceptMonthNamesInDateInputs"`
	// TemplatesDir is searched for component templates before the embedded
	// bundle.
	TemplatesDir string `yaml:"templatesDir,omitempty" json:"templatesDir,omitempty"`
	// SanitizeHTML runs html options through a bluemonday policy.
	SanitizeHTML bool `yaml:"sanitizeHtml" json:"sanitizeHtml"`
	// Theme and Variant select component template overrides when a theme
	// selector is supplied to NewGenerator.
	Theme   string `yaml:"theme,omitempty" json:"theme,omitempty"`
	Variant string `yaml:"variant,omitempty" json:"variant,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		AcceptMonthNamesInDateInputs: true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("govuk: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("govuk: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
