// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Camera != "main" {
		t.Errorf("expected default camera=main, got %q", cfg.Defaults.Camera)
	}
	if cfg.Defaults.Quality != "high" {
		t.Errorf("expected default quality=high, got %q", cfg.Defaults.Quality)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if cfg.Locations == nil || cfg.Profiles == nil {
		t.Error("expected locations and profiles maps to be initialized")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  camera: front
  quality: maximum
  format: json
  verbose: true
tools:
  exiftool: /opt/exiftool/exiftool
locations:
  office:
    name: HQ Roof
    latitude: 47.6062
    longitude: -122.3321
    altitude: 56
profiles:
  archive:
    description: Long-term archive encodes
    quality: maximum
    stabilize: true
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Camera != "front" {
		t.Errorf("expected camera=front, got %q", cfg.Defaults.Camera)
	}
	if cfg.Defaults.Quality != "maximum" {
		t.Errorf("expected quality=maximum, got %q", cfg.Defaults.Quality)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Tools.Exiftool != "/opt/exiftool/exiftool" {
		t.Errorf("expected exiftool path, got %q", cfg.Tools.Exiftool)
	}

	office, ok := cfg.Locations["office"]
	if !ok {
		t.Fatal("expected office location parsed")
	}
	if office.Name != "HQ Roof" || office.Latitude != 47.6062 {
		t.Errorf("unexpected office location %+v", office)
	}

	archive, ok := cfg.Profiles["archive"]
	if !ok {
		t.Fatal("expected archive profile parsed")
	}
	if archive.Quality != "maximum" {
		t.Errorf("expected profile quality=maximum, got %q", archive.Quality)
	}
	if archive.Stabilize == nil || !*archive.Stabilize {
		t.Error("expected stabilize=true in profile")
	}
	if archive.Mute != nil {
		t.Error("expected absent mute key to stay nil")
	}
}

func TestLoadConfig_EmptySelectorsFallBack(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  camera: ""
  quality: ""
  format: ""
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Camera != "main" || cfg.Defaults.Quality != "high" || cfg.Defaults.Format != "text" {
		t.Errorf("expected empty selectors to fall back to defaults, got %+v", cfg.Defaults)
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.Camera != "main" {
		t.Errorf("expected default camera, got %q", cfg.Defaults.Camera)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestApplyProfile(t *testing.T) {
	cfg := DefaultConfig()
	comment := "Archive capture"
	cfg.Profiles["archive"] = Profile{
		Camera:  "front",
		Quality: "maximum",
		Comment: comment,
	}

	profile, err := ApplyProfile(cfg, "archive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Camera != "front" || cfg.Defaults.Quality != "maximum" {
		t.Errorf("expected profile overlaid onto defaults, got %+v", cfg.Defaults)
	}
	if profile.Comment != comment {
		t.Errorf("expected profile returned for per-run settings, got %+v", profile)
	}
	// Format was not set in the profile, so the default survives.
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected untouched format, got %q", cfg.Defaults.Format)
	}
}

func TestApplyProfile_UnknownListsKnown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profiles["archive"] = Profile{}
	cfg.Profiles["travel"] = Profile{}

	_, err := ApplyProfile(cfg, "nope")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !strings.Contains(err.Error(), "archive") || !strings.Contains(err.Error(), "travel") {
		t.Errorf("expected known profiles listed, got %v", err)
	}
}

func TestFindConfigFile_Precedence(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	t.Setenv("GLASSMARK_CONFIG", "")
	t.Setenv("GLASSMARK_CONFIG_DIR", filepath.Join(dir, "empty"))

	// Nothing anywhere.
	if got := FindConfigFile(""); got != "" {
		t.Errorf("expected no config found, got %q", got)
	}

	// Standard dotfile in the working directory.
	if err := os.WriteFile(".glassmark.yaml", []byte("defaults: {}\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if got := FindConfigFile(""); got != ".glassmark.yaml" {
		t.Errorf("expected .glassmark.yaml, got %q", got)
	}

	// Plain name beats the dotfile.
	if err := os.WriteFile("glassmark.yaml", []byte("defaults: {}\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if got := FindConfigFile(""); got != "glassmark.yaml" {
		t.Errorf("expected glassmark.yaml, got %q", got)
	}

	// Environment beats the working directory.
	t.Setenv("GLASSMARK_CONFIG", "/etc/glassmark/config.yaml")
	if got := FindConfigFile(""); got != "/etc/glassmark/config.yaml" {
		t.Errorf("expected env config, got %q", got)
	}

	// Explicit path beats everything, even when missing.
	if got := FindConfigFile("/explicit/config.yaml"); got != "/explicit/config.yaml" {
		t.Errorf("expected explicit path, got %q", got)
	}
}

func TestToolOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tools.Exiftool = "/opt/exiftool/exiftool"
	cfg.Tools.FFprobe = "/usr/local/bin/ffprobe"

	overrides := cfg.ToolOverrides()
	if len(overrides) != 2 {
		t.Fatalf("expected two overrides, got %v", overrides)
	}
	if overrides["exiftool"] != "/opt/exiftool/exiftool" {
		t.Errorf("expected exiftool override, got %q", overrides["exiftool"])
	}
	if _, ok := overrides["ffmpeg"]; ok {
		t.Error("expected empty ffmpeg entry omitted")
	}
}
