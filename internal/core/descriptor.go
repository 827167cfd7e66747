// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions is the fixed allow-list of video containers
// glassmark will process.
var supportedExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".m4v", ".webm"}

// SupportedExtensions returns the video extension allow-list.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// IsSupported reports whether path carries a recognized video extension.
// The check is case-insensitive.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Descriptor is a validated processing input.
type Descriptor struct {
	Path string
	Base string // file name without extension
	Ext  string // lowercased extension including the dot
	Size int64
}

// Describe validates that path names an existing file with a recognized
// video extension and returns its descriptor.
func Describe(path string) (*Descriptor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, NewUnsupportedFileTypeError(path, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a video file", path)
	}

	return &Descriptor{
		Path: path,
		Base: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Ext:  ext,
		Size: info.Size(),
	}, nil
}
