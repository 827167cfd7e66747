// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the glassmark YAML configuration: default
// selectors, external tool paths, user-defined locations, and named
// profiles.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"glassmark/internal/paths"
	"glassmark/internal/presets"
)

// Config represents the application configuration.
type Config struct {
	// Default settings applied when neither a profile nor a flag says
	// otherwise.
	Defaults struct {
		Camera  string `yaml:"camera"`
		Quality string `yaml:"quality"`
		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// Tools holds explicit executable paths. An empty entry means PATH
	// lookup (after the GLASSMARK_<TOOL> environment variables).
	Tools struct {
		Exiftool string `yaml:"exiftool"`
		FFmpeg   string `yaml:"ffmpeg"`
		FFprobe  string `yaml:"ffprobe"`
	} `yaml:"tools"`

	// Locations are user-defined named positions. They shadow built-in
	// locations with the same key.
	Locations map[string]presets.Location `yaml:"locations"`

	// Profiles for recurring stamping scenarios.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named bundle of processing settings. Bool fields
// are pointers so an absent key never overrides anything.
type Profile struct {
	Description string `yaml:"description"`
	Camera      string `yaml:"camera"`
	Location    string `yaml:"location"`
	Quality     string `yaml:"quality"`
	Format      string `yaml:"format"`
	Comment     string `yaml:"comment"`
	Watermark   string `yaml:"watermark"`
	Mute        *bool  `yaml:"mute"`
	Optimize    *bool  `yaml:"optimize"`
	Stabilize   *bool  `yaml:"stabilize"`
	Verify      *bool  `yaml:"verify"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() *Config {
	config := &Config{
		Locations: make(map[string]presets.Location),
		Profiles:  make(map[string]Profile),
	}
	config.Defaults.Camera = string(presets.CameraMain)
	config.Defaults.Quality = presets.QualityHigh
	config.Defaults.Format = "text"
	return config
}

// LoadConfig loads configuration from the specified file path. Defaults
// apply first; file values overlay them. An empty path returns the
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Empty selectors fall back to the defaults rather than selecting
	// nothing.
	if config.Defaults.Camera == "" {
		config.Defaults.Camera = string(presets.CameraMain)
	}
	if config.Defaults.Quality == "" {
		config.Defaults.Quality = presets.QualityHigh
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	return config, nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when it is empty). Loading failures fall back to
// the default configuration; callers never crash on a bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	cfg, err := LoadConfig(FindConfigFile(configFile))
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations.
// An explicit path wins outright, even when it does not exist, so the
// caller gets a clear read error instead of a silent fallback.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("GLASSMARK_CONFIG"); env != "" {
		return env
	}
	if fileExists("glassmark.yaml") {
		return "glassmark.yaml"
	}
	if fileExists(".glassmark.yaml") {
		return ".glassmark.yaml"
	}
	standard := filepath.Join(paths.ConfigDir(), "config.yaml")
	if fileExists(standard) {
		return standard
	}
	return ""
}

// ApplyProfile overlays the named profile's selector fields onto the
// config defaults and returns the profile for its per-run settings.
// Unknown names fail with the list of known profiles.
func ApplyProfile(cfg *Config, name string) (*Profile, error) {
	profile := cfg.GetProfile(name)
	if profile == nil {
		known := cfg.ListProfiles()
		sort.Strings(known)
		return nil, fmt.Errorf("unknown profile %q (known profiles: %s)", name, strings.Join(known, ", "))
	}

	if profile.Camera != "" {
		cfg.Defaults.Camera = profile.Camera
	}
	if profile.Quality != "" {
		cfg.Defaults.Quality = profile.Quality
	}
	if profile.Format != "" {
		cfg.Defaults.Format = profile.Format
	}
	return profile, nil
}

// ListProfiles returns the available profile names.
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ToolPath returns the configured executable path for a tool, empty when
// unset.
func (c *Config) ToolPath(tool string) string {
	switch tool {
	case "exiftool":
		return c.Tools.Exiftool
	case "ffmpeg":
		return c.Tools.FFmpeg
	case "ffprobe":
		return c.Tools.FFprobe
	}
	return ""
}

// ToolOverrides returns the non-empty tool paths keyed by tool name, in
// the shape the command runner consumes.
func (c *Config) ToolOverrides() map[string]string {
	overrides := make(map[string]string)
	for _, tool := range []string{"exiftool", "ffmpeg", "ffprobe"} {
		if path := c.ToolPath(tool); path != "" {
			overrides[tool] = path
		}
	}
	return overrides
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
