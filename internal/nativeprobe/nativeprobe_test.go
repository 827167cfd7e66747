// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nativeprobe

import (
	"os"
	"path/filepath"
	"testing"

	"glassmark/internal/exiftool"
)

func TestFileRejectsUnknownExtensions(t *testing.T) {
	_, err := File("/videos/clip.avi")
	if !exiftool.IsReadError(err) {
		t.Fatalf("expected read error for extension without a native reader, got %v", err)
	}
}

func TestFileReportsMissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.mp4"))
	if !exiftool.IsReadError(err) {
		t.Fatalf("expected read error for missing file, got %v", err)
	}
}

func TestContainerRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("this is not an mp4 container"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := File(path)
	if !exiftool.IsReadError(err) {
		t.Fatalf("expected read error for malformed container, got %v", err)
	}
}

func TestStillRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(path, []byte{0xff, 0xd8, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := File(path)
	if !exiftool.IsReadError(err) {
		t.Fatalf("expected read error for jpeg without exif, got %v", err)
	}
}
