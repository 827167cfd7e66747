// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"glassmark/internal/paths"
	"glassmark/internal/presets"
)

// Stabilization filter parameters for the two-pass vidstab chain.
const (
	stabShakiness = 5
	stabAccuracy  = 15
	stabSmoothing = 30
)

// TranscodePlan fully describes one encode pass. Build the base plan from
// a camera preset and quality tier with PlanFor, then overlay caller
// overrides; explicit values always win.
type TranscodePlan struct {
	Width        int
	Height       int
	FrameRate    int
	VideoBitrate string
	CRF          int
	Preset       string
	MuteAudio    bool
	Stabilize    bool
	Watermark    string

	// Duration of the source, for progress percentages. Zero keeps
	// progress reports indeterminate.
	Duration time.Duration
}

// PlanFor derives the base transcode plan from a camera preset and a
// quality tier.
func PlanFor(cam presets.CameraPreset, quality presets.QualityProfile) TranscodePlan {
	return TranscodePlan{
		Width:        cam.Width,
		Height:       cam.Height,
		FrameRate:    cam.FrameRate,
		VideoBitrate: cam.VideoBitrate,
		CRF:          quality.CRF,
		Preset:       quality.Preset,
	}
}

// Transcode re-encodes input into the profile described by the plan,
// reporting advisory progress as the encoder runs. Stabilization adds a
// detection pass before the encode.
func (t *Tool) Transcode(ctx context.Context, input, output string, plan TranscodePlan, progress func(Progress)) error {
	filters := make([]string, 0, 3)

	if plan.Stabilize {
		transforms := paths.TempSibling(os.TempDir(), ".trf")
		defer os.Remove(transforms)

		if err := t.detectShake(ctx, input, transforms); err != nil {
			return err
		}
		filters = append(filters,
			fmt.Sprintf("vidstabtransform=smoothing=%d:input=%s", stabSmoothing, transforms))
	}

	filters = append(filters, scalePadFilter(plan.Width, plan.Height))

	if plan.Watermark != "" {
		filters = append(filters, drawtextFilter(plan.Watermark))
	}

	args := []string{"-i", input, "-vf", strings.Join(filters, ",")}
	if plan.FrameRate > 0 {
		args = append(args, "-r", strconv.Itoa(plan.FrameRate))
	}
	args = append(args,
		"-c:v", "libx264",
		"-preset", plan.Preset,
		"-crf", strconv.Itoa(plan.CRF),
	)
	if plan.VideoBitrate != "" {
		args = append(args,
			"-b:v", plan.VideoBitrate,
			"-maxrate", plan.VideoBitrate,
			"-bufsize", doubleRate(plan.VideoBitrate),
		)
	}
	args = append(args, "-pix_fmt", "yuv420p", "-movflags", "+faststart")
	if plan.MuteAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", "aac", "-b:a", "128k", "-ar", "48000")
	}
	args = append(args, "-progress", "pipe:1", "-nostats", "-y", output)

	tracker := newProgressTracker(plan.Duration, progress)
	return t.runner.RunStream(ctx, ToolName, args, tracker.consume)
}

// detectShake runs the vidstab analysis pass, writing the transforms file
// consumed by the encode pass.
func (t *Tool) detectShake(ctx context.Context, input, transforms string) error {
	_, err := t.runner.Run(ctx, ToolName,
		"-i", input,
		"-vf", fmt.Sprintf("vidstabdetect=shakiness=%d:accuracy=%d:result=%s",
			stabShakiness, stabAccuracy, transforms),
		"-f", "null", "-",
	)
	return err
}

// scalePadFilter fits the source into the target frame, padding instead
// of cropping so nothing is lost on aspect mismatch.
func scalePadFilter(width, height int) string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		width, height, width, height)
}

// drawtextFilter renders the watermark text in the lower right corner.
func drawtextFilter(text string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `:`, `\:`, `'`, `\'`).Replace(text)
	return fmt.Sprintf(
		"drawtext=text='%s':fontcolor=white@0.8:fontsize=36:x=w-tw-20:y=h-th-20",
		escaped)
}

// doubleRate doubles a bitrate string such as "18M" for the encoder's
// buffer size. Unparseable rates pass through unchanged.
func doubleRate(rate string) string {
	digits := rate
	suffix := ""
	for i, r := range rate {
		if r < '0' || r > '9' {
			digits, suffix = rate[:i], rate[i:]
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return rate
	}
	return strconv.Itoa(n*2) + suffix
}
