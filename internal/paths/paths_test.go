// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTempSibling(t *testing.T) {
	dir := t.TempDir()

	first := TempSibling(dir, ".mp4")
	second := TempSibling(dir, ".mp4")

	if first == second {
		t.Errorf("expected unique temp paths, got %q twice", first)
	}
	if filepath.Dir(first) != dir {
		t.Errorf("expected temp path inside %q, got %q", dir, first)
	}
	if !strings.HasPrefix(filepath.Base(first), tempPrefix) {
		t.Errorf("expected temp prefix %q, got %q", tempPrefix, filepath.Base(first))
	}
	if !strings.HasSuffix(first, ".mp4") {
		t.Errorf("expected .mp4 suffix, got %q", first)
	}
}

func TestIsTempArtifact(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"scratch file", "/videos/.glassmark-abc123.mp4", true},
		{"bare scratch name", ".glassmark-xyz.mov", true},
		{"final output", "/videos/clip_rayban.mp4", false},
		{"hidden but unrelated", "/videos/.hidden.mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTempArtifact(tt.path); got != tt.expected {
				t.Errorf("IsTempArtifact(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/videos"); got != filepath.Join(home, "videos") {
		t.Errorf("expected %q, got %q", filepath.Join(home, "videos"), got)
	}
	if got := ExpandHome("~"); got != home {
		t.Errorf("expected %q, got %q", home, got)
	}
	if got := ExpandHome("/absolute/clip.mp4"); got != "/absolute/clip.mp4" {
		t.Errorf("expected untouched path, got %q", got)
	}
	if got := ExpandHome("relative/clip.mp4"); got != "relative/clip.mp4" {
		t.Errorf("expected untouched path, got %q", got)
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv("GLASSMARK_CONFIG_DIR", "/etc/glassmark")

	if got := ConfigDir(); got != "/etc/glassmark" {
		t.Errorf("expected /etc/glassmark, got %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "frames")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}
