// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package paths provides the filesystem helpers shared across glassmark.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// tempPrefix marks in-flight transcode artifacts so interrupted runs are
// recognizable on disk.
const tempPrefix = ".glassmark-"

// ConfigDir returns the glassmark configuration directory.
func ConfigDir() string {
	// Check for explicit override first
	if dir := os.Getenv("GLASSMARK_CONFIG_DIR"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "glassmark")
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Absolute cleans a path and makes it absolute against the working
// directory, expanding a leading ~ first.
func Absolute(path string) (string, error) {
	return filepath.Abs(ExpandHome(path))
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// TempSibling returns a unique hidden scratch path inside dir with the
// given extension, used for in-flight transcode output so the final path
// only ever holds complete files.
func TempSibling(dir, ext string) string {
	return filepath.Join(dir, tempPrefix+uuid.NewString()+ext)
}

// IsTempArtifact reports whether a file name is one of our scratch files.
func IsTempArtifact(name string) bool {
	return strings.HasPrefix(filepath.Base(name), tempPrefix)
}
