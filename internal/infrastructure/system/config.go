// Package system provides infrastructure for system-level configuration.
// This includes loading the system config file (~/.seclog/config.yaml).
package system

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema []byte

const configSchemaURL = "config.schema.json"

// Config represents the global configuration file (~/.seclog/config.yaml).
// Command-line flags take precedence over these values.
type Config struct {
	Schema SchemaConfig `yaml:"schema" json:"schema"`
	Policy PolicyConfig `yaml:"policy" json:"policy"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// SchemaConfig selects how logging XML files are interpreted.
type SchemaConfig struct {
	// Strategy is one of "flat", "publish" or "legacy".
	Strategy string `yaml:"strategy" json:"strategy"`

	// VersionConstraint is checked against the root element's version attribute.
	VersionConstraint string `yaml:"version_constraint" json:"version_constraint"`
}

// PolicyConfig bounds the property container built for each file.
type PolicyConfig struct {
	// MaxProperties caps the container length. 0 means unbounded.
	MaxProperties int `yaml:"max_properties" json:"max_properties"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
	Color  bool   `yaml:"color" json:"color"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with safe defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Schema: SchemaConfig{
			Strategy:          "flat",
			VersionConstraint: "^1",
		},
		Policy: PolicyConfig{
			MaxProperties: 0,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Keys missing from the file keep their default values.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates system configuration YAML.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return config, nil
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	return config, nil
}

// validate checks raw YAML against the embedded JSON schema.
func validate(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse system config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse system config: %w", err)
	}
	if doc == nil {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(configSchemaURL, bytes.NewReader(configSchema)); err != nil {
		return fmt.Errorf("failed to add system config schema: %w", err)
	}
	schema, err := compiler.Compile(configSchemaURL)
	if err != nil {
		return fmt.Errorf("failed to compile system config schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("system config validation failed: %w", err)
	}
	return nil
}

func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return errors.New("system config validation failed")
	}
	return fmt.Errorf("system config validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
