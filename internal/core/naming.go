// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"path/filepath"
	"strings"

	"glassmark/internal/presets"
)

// OutputName composes the default output path for a processed video:
// the input's base name with camera and operation suffixes appended, in
// the input's own directory. An explicit output path always wins over
// this default.
func OutputName(input string, camera presets.Camera, transcoded bool) string {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)

	name := base + "_rayban"
	if camera == presets.CameraFront {
		name += "_front"
	}
	if transcoded {
		name += "_optimized"
	}
	return filepath.Join(dir, name+ext)
}

// ThumbnailName composes the default thumbnail path for a video.
func ThumbnailName(input string) string {
	dir := filepath.Dir(input)
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_thumb.jpg")
}

// FramesDirName composes the default frame-extraction directory for a video.
func FramesDirName(input string) string {
	dir := filepath.Dir(input)
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_frames")
}

// AudioName composes the default output path for audio replace and mix
// operations.
func AudioName(input string) string {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(dir, base+"_audio"+ext)
}
