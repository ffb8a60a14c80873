// Package config loads .numdiff.yaml defaults for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the effective defaults the CLI starts from. Flags set
// on the command line override these.
type AppConfig struct {
	Epsilon float64
	Comma   bool
	Verbose bool
	Theme   string
	NoColor bool
}

// Constants for built-in defaults.
const (
	DefaultEpsilon = 0.1
	DefaultTheme   = "default"
)

// fileConfig mirrors the YAML file. Pointers distinguish "absent" from
// zero values, since epsilon 0 is a meaningful setting.
type fileConfig struct {
	Epsilon *float64 `yaml:"epsilon,omitempty"`
	Comma   *bool    `yaml:"comma,omitempty"`
	Verbose *bool    `yaml:"verbose,omitempty"`
	Theme   string   `yaml:"theme,omitempty"`
	NoColor *bool    `yaml:"no_color,omitempty"`
}

// Load returns built-in defaults merged with the first .numdiff.yaml
// found (working directory, then the user config directory). A missing
// file is not an error; a malformed one produces a warning on stderr
// and the defaults are used.
func Load() *AppConfig {
	cfg := &AppConfig{
		Epsilon: DefaultEpsilon,
		Theme:   DefaultTheme,
	}

	path := configPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: parsing config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fc.Epsilon != nil {
		cfg.Epsilon = *fc.Epsilon
	}
	if fc.Comma != nil {
		cfg.Comma = *fc.Comma
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	return cfg
}

// configPath finds the .numdiff.yaml configuration file: the local
// directory first, then <UserConfigDir>/numdiff/.numdiff.yaml.
func configPath() string {
	localPath := ".numdiff.yaml"
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "numdiff", ".numdiff.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
