// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted for a configuration
// file path when none is passed on the command line.
const EnvConfigFile = "CERT_TREE_CONFIG_FILE"

// Default values applied before any file is read and restored when a file
// carries invalid (non-positive) settings.
const (
	DefaultWarnDays = 30
	DefaultPageSize = 10
	DefaultTimeout  = 10
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the certificate inspector configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified on the
// command line or by the CERT_TREE_CONFIG_FILE environment variable, with
// defaults applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for inspection and display
	Defaults struct {
		// WarnDays: Number of days before expiry to mark certificates as expiring soon
		WarnDays int `json:"warnDays" yaml:"warnDays"`
		// PageSize: Number of list rows PgUp/PgDn jump in the interactive view
		PageSize int `json:"pageSize" yaml:"pageSize"`
		// Timeout: Default timeout in seconds for network retrieval
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"defaults" yaml:"defaults"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// It supports .json, .yaml, and .yml extensions for flexible configuration management.
//
// Parameters:
//   - configPath: Path to the configuration file
//
// Returns:
//   - configFormat: The detected format (configFormatJSON or configFormatYAML)
//
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// It supports both JSON and YAML formats for configuration flexibility.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads inspector configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. CERT_TREE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//
// The function first applies hardcoded defaults, then attempts to load and merge
// configuration from the specified file. The file format is automatically detected
// based on the file extension (.json, .yaml, or .yml). A path that names a missing
// or unreadable file is an error; having no configuration at all is not.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.WarnDays = DefaultWarnDays
	config.Defaults.PageSize = DefaultPageSize
	config.Defaults.Timeout = DefaultTimeout

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.WarnDays <= 0 {
			config.Defaults.WarnDays = DefaultWarnDays
		}
		if config.Defaults.PageSize <= 0 {
			config.Defaults.PageSize = DefaultPageSize
		}
		if config.Defaults.Timeout <= 0 {
			config.Defaults.Timeout = DefaultTimeout
		}
	}

	return config, nil
}
