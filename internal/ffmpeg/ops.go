// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"glassmark/internal/paths"
)

// Concat joins two or more inputs into one output with stream copy. It
// fails before any tool invocation when fewer than two inputs are given.
func (t *Tool) Concat(ctx context.Context, inputs []string, output string) error {
	if len(inputs) < 2 {
		return NewInsufficientInputsError(len(inputs))
	}

	list, err := writeConcatList(inputs)
	if err != nil {
		return err
	}
	defer os.Remove(list)

	_, err = t.runner.Run(ctx, ToolName,
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-c", "copy",
		"-y", output,
	)
	return err
}

// writeConcatList writes the demuxer list file naming every input.
func writeConcatList(inputs []string) (string, error) {
	f, err := os.CreateTemp("", "glassmark-concat-*.txt")
	if err != nil {
		return "", err
	}

	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", err
		}
		// Single quotes inside paths need the '"'"' escape the demuxer
		// understands.
		escaped := strings.ReplaceAll(abs, "'", `'"'"'`)
		if _, err := fmt.Fprintf(f, "file '%s'\n", escaped); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", err
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// Thumbnail captures a single frame at the given offset as a JPEG.
func (t *Tool) Thumbnail(ctx context.Context, input, output string, at time.Duration) error {
	_, err := t.runner.Run(ctx, ToolName,
		"-ss", formatSeconds(at),
		"-i", input,
		"-vframes", "1",
		"-q:v", "2",
		"-y", output,
	)
	return err
}

// ExtractFrames writes one JPEG every interval into dir, returning how
// many frames landed on disk.
func (t *Tool) ExtractFrames(ctx context.Context, input, dir string, every time.Duration) (int, error) {
	if err := paths.EnsureDir(dir); err != nil {
		return 0, err
	}

	pattern := filepath.Join(dir, "frame_%04d.jpg")
	_, err := t.runner.Run(ctx, ToolName,
		"-i", input,
		"-vf", "fps=1/"+formatSeconds(every),
		"-q:v", "2",
		"-y", pattern,
	)
	if err != nil {
		return 0, err
	}
	return countFrames(dir)
}

// ReplaceAudio swaps the video's audio track for the given one, copying
// the video stream untouched.
func (t *Tool) ReplaceAudio(ctx context.Context, video, audio, output string) error {
	_, err := t.runner.Run(ctx, ToolName,
		"-i", video,
		"-i", audio,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		"-y", output,
	)
	return err
}

// MixAudio blends the new track with the video's existing audio.
func (t *Tool) MixAudio(ctx context.Context, video, audio, output string) error {
	_, err := t.runner.Run(ctx, ToolName,
		"-i", video,
		"-i", audio,
		"-filter_complex", "[0:a][1:a]amix=inputs=2:duration=first",
		"-c:v", "copy",
		"-y", output,
	)
	return err
}

// countFrames counts the extracted frame files inside dir.
func countFrames(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "frame_") && strings.HasSuffix(name, ".jpg") {
			count++
		}
	}
	return count, nil
}

// formatSeconds renders a duration as decimal seconds for ffmpeg flags.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
