// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core orchestrates single-file and batch processing: input
// validation, optional transcoding, output placement, and the metadata
// write, with the error taxonomy the pipeline reports.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"glassmark/internal/exiftool"
	"glassmark/internal/ffmpeg"
	"glassmark/internal/metadata"
	"glassmark/internal/observability"
	"glassmark/internal/paths"
	"glassmark/internal/presets"
)

// MetadataWriter is the metadata tool surface the processor depends on.
type MetadataWriter interface {
	Write(ctx context.Context, path string, rec *metadata.Record) error
	Verify(ctx context.Context, path string) *exiftool.VerifyResult
}

// Transcoder is the video tool surface the processor depends on.
type Transcoder interface {
	Probe(ctx context.Context, path string) (*ffmpeg.ProbeResult, error)
	Transcode(ctx context.Context, input, output string, plan ffmpeg.TranscodePlan, progress func(ffmpeg.Progress)) error
}

// Options configures one processing run. Every field is optional.
type Options struct {
	// Output is the explicit destination path; empty selects default
	// naming next to the input.
	Output string

	// Metadata stamping configuration.
	Camera    string
	Location  string
	Latitude  string
	Longitude string
	Altitude  string
	Date      string
	Comment   string
	MuteAudio bool

	// Optimize enables the transcode pass. The explicit overrides below
	// beat both the camera profile and the quality tier; zero or empty
	// keeps the profile value.
	Optimize     bool
	Quality      string
	Width        int
	Height       int
	FrameRate    int
	VideoBitrate string
	Stabilize    bool
	Watermark    string

	// Verify re-reads the output after stamping and records the verdict.
	Verify bool

	// Progress receives advisory transcode progress. It never alters
	// control flow.
	Progress func(ffmpeg.Progress)
}

// Result is the outcome of processing one file.
type Result struct {
	Input      string
	Output     string
	Camera     presets.Camera
	Transcoded bool
	Stamped    bool
	Verified   bool
	Duration   time.Duration
	Err        error
}

// Ok reports whether the operation succeeded.
func (r *Result) Ok() bool {
	return r.Err == nil
}

// Report aggregates the outcomes of a batch run.
type Report struct {
	Results   []Result
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// SingleReport wraps one file's result so single-file commands share
// the batch report renderers.
func SingleReport(res Result) *Report {
	report := &Report{
		Results: []Result{res},
		Total:   1,
		Elapsed: res.Duration,
	}
	if res.Ok() {
		report.Succeeded = 1
	} else {
		report.Failed = 1
	}
	return report
}

// ProcessorConfig wires the processor's collaborators.
type ProcessorConfig struct {
	Table    *presets.Table
	Resolver *metadata.Resolver
	Metadata MetadataWriter
	Video    Transcoder
	Observer *observability.StandardObserver
}

// Processor drives the per-file pipeline: validate, transcode when
// requested, place the output, write metadata, clean up.
type Processor struct {
	table    *presets.Table
	resolver *metadata.Resolver
	exif     MetadataWriter
	video    Transcoder
	observer *observability.StandardObserver
}

// NewProcessor creates a processor. A nil table or resolver falls back
// to the built-in presets.
func NewProcessor(cfg ProcessorConfig) *Processor {
	table := cfg.Table
	if table == nil {
		table = presets.Builtin()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = metadata.NewResolver(table, nil)
	}
	return &Processor{
		table:    table,
		resolver: resolver,
		exif:     cfg.Metadata,
		video:    cfg.Video,
		observer: cfg.Observer,
	}
}

// Process runs the full pipeline for one file. Failures are reported in
// the result, never panicked or half-applied: a metadata failure leaves
// the already-placed output on disk without tags.
func (p *Processor) Process(ctx context.Context, input string, opts Options) Result {
	return p.run(ctx, input, opts, true)
}

// StampOnly writes metadata onto path in place, with no transcode and no
// copy.
func (p *Processor) StampOnly(ctx context.Context, path string, opts Options) Result {
	opts.Output = path
	opts.Optimize = false
	return p.run(ctx, path, opts, true)
}

// TranscodeOnly re-encodes input without writing any metadata.
func (p *Processor) TranscodeOnly(ctx context.Context, input string, opts Options) Result {
	opts.Optimize = true
	return p.run(ctx, input, opts, false)
}

func (p *Processor) run(ctx context.Context, input string, opts Options, stamp bool) (res Result) {
	start := time.Now()
	res.Input = input

	done := p.observer.StartTiming("core", "process", input)
	defer func() {
		res.Duration = time.Since(start)
		done(res.Err == nil, map[string]interface{}{
			"output":     res.Output,
			"transcoded": res.Transcoded,
			"stamped":    res.Stamped,
		})
	}()

	// Validate before any tool runs.
	desc, err := Describe(input)
	if err != nil {
		res.Err = err
		return res
	}

	cam := p.camera(opts.Camera)
	res.Camera = cam.Camera

	record := p.resolver.Resolve(metadata.Config{
		Camera:    opts.Camera,
		Location:  opts.Location,
		Latitude:  opts.Latitude,
		Longitude: opts.Longitude,
		Altitude:  opts.Altitude,
		Date:      opts.Date,
		Comment:   opts.Comment,
		MuteAudio: opts.MuteAudio,
	})

	final := opts.Output
	if final == "" {
		final = OutputName(input, cam.Camera, opts.Optimize)
	}
	res.Output = final

	// current tracks whichever path holds the bytes destined for final.
	current := desc.Path
	temp := ""
	defer func() {
		// Best-effort cleanup on success and failure alike. A rename
		// already consumed the artifact; a leftover gets removed here.
		if temp != "" {
			os.Remove(temp)
		}
	}()

	if opts.Optimize {
		plan := p.plan(cam, opts)

		// A failed probe only costs the progress percentage.
		if probe, err := p.video.Probe(ctx, desc.Path); err == nil {
			plan.Duration = probe.Duration
		}

		temp = paths.TempSibling(filepath.Dir(final), desc.Ext)
		encodeDone := p.observer.StartTiming("core", "transcode", input)
		step := p.startStep("transcode", input)
		if err := p.video.Transcode(ctx, desc.Path, temp, plan, opts.Progress); err != nil {
			encodeDone(false, nil)
			step(false, "")
			res.Err = err
			return res
		}
		encodeDone(true, nil)
		step(true, "")
		res.Transcoded = true
		current = temp
	}

	if err := relocate(current, final, res.Transcoded); err != nil {
		res.Err = err
		return res
	}

	if stamp {
		step := p.startStep("write_metadata", final)
		if err := p.exif.Write(ctx, final, record); err != nil {
			step(false, "")
			// The output stays in place without metadata; no rollback.
			res.Err = err
			return res
		}
		step(true, "")
		res.Stamped = true

		if opts.Verify {
			res.Verified = p.exif.Verify(ctx, final).Stamped
		}
	}
	return res
}

// startStep opens a narrative debug step when a debug observer is
// attached, returning a no-op completion otherwise.
func (p *Processor) startStep(step, path string) func(success bool, details string) {
	if p.observer != nil && p.observer.DebugObserver != nil {
		return p.observer.DebugObserver.StartStep("core", step, path)
	}
	return func(bool, string) {}
}

// camera resolves the camera preset with the same main-camera fallback
// the resolver applies, so naming and transcode planning agree with the
// stamped record.
func (p *Processor) camera(name string) presets.CameraPreset {
	cam, ok := p.table.Camera(name)
	if !ok {
		cam, _ = p.table.Camera(string(presets.CameraMain))
	}
	return cam
}

// plan builds the encode plan from the camera profile and quality tier,
// then overlays the explicit caller overrides.
func (p *Processor) plan(cam presets.CameraPreset, opts Options) ffmpeg.TranscodePlan {
	quality, ok := p.table.Quality(opts.Quality)
	if !ok {
		quality, _ = p.table.Quality(presets.QualityHigh)
	}

	plan := ffmpeg.PlanFor(cam, quality)
	if opts.Width > 0 {
		plan.Width = opts.Width
	}
	if opts.Height > 0 {
		plan.Height = opts.Height
	}
	if opts.FrameRate > 0 {
		plan.FrameRate = opts.FrameRate
	}
	if opts.VideoBitrate != "" {
		plan.VideoBitrate = opts.VideoBitrate
	}
	plan.MuteAudio = opts.MuteAudio
	plan.Stabilize = opts.Stabilize
	plan.Watermark = opts.Watermark
	return plan
}

// relocate puts the bytes at current onto final. A transcoded temp
// artifact is renamed; a source input is copied so the original file
// survives. Identical paths mean stamp in place.
func relocate(current, final string, consumeSource bool) error {
	if current == final {
		return nil
	}
	if consumeSource {
		if err := os.Rename(current, final); err == nil {
			return nil
		}
		// Rename fails across devices; fall back to a copy and let
		// cleanup collect the source artifact.
	}
	return copyFile(current, final)
}

// copyFile copies src to dst, truncating any existing dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
