// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package glassmark

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glassmark/internal/config"
	"glassmark/internal/exiftool"
	"glassmark/internal/ffmpeg"
)

func TestNewWithNilConfig(t *testing.T) {
	client := New(nil)

	require.NotNil(t, client.cfg)
	assert.Equal(t, "main", client.cfg.Defaults.Camera)
	assert.NotNil(t, client.processor)
	assert.NotNil(t, client.exif)
	assert.NotNil(t, client.video)
}

func TestNewWiresConfiguredLocations(t *testing.T) {
	cfg := config.DefaultConfig()
	client := New(cfg)
	assert.NotNil(t, client.resolver)
}

func TestAnalyzeFallsBackToNativeReader(t *testing.T) {
	// Point the exiftool override at a path that cannot exist so the
	// read degrades to the built-in reader, which has no .avi support.
	t.Setenv("GLASSMARK_EXIFTOOL", filepath.Join(t.TempDir(), "missing", "exiftool"))

	clip := filepath.Join(t.TempDir(), "clip.avi")
	require.NoError(t, os.WriteFile(clip, []byte("not a video"), 0o644))

	client := New(nil)
	_, err := client.Analyze(context.Background(), clip)
	require.Error(t, err)
	assert.True(t, exiftool.IsReadError(err))
}

func TestMergeRejectsSingleInput(t *testing.T) {
	client := New(nil)
	err := client.Merge(context.Background(), []string{"only.mp4"}, "out.mp4")
	require.Error(t, err)
	assert.True(t, ffmpeg.IsInsufficientInputs(err))
}

func TestCheckExiftoolHonorsEnvOverride(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "exiftool")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("GLASSMARK_EXIFTOOL", stub)

	client := New(nil)
	path, err := client.CheckExiftool()
	require.NoError(t, err)
	assert.Equal(t, stub, path)
}
